package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hyperledger/fabric-sdk-go/pkg/client/channel"
	"github.com/hyperledger/fabric-sdk-go/pkg/client/msp"
	"github.com/hyperledger/fabric-sdk-go/pkg/common/providers/fab"
	mspctx "github.com/hyperledger/fabric-sdk-go/pkg/common/providers/msp"
	"github.com/hyperledger/fabric-sdk-go/pkg/fabsdk"
	"go.uber.org/zap"

	"github.com/chainsafe/fabric-notary-gateway/pkg/fabricsdk"
)

// FabricGateway implements Gateway with fabric-sdk-go. Every Connect creates its own SDK
// instance, which is released by Network.Close.
type FabricGateway struct {
	cfg    Config
	logger *zap.Logger
}

// New validates cfg and returns a gateway. No connection is made until Connect.
func New(cfg Config, opts ...Option) (*FabricGateway, error) {
	if err := cfg.setDefaults(); err != nil {
		return nil, fmt.Errorf("apply ledger config defaults: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid ledger config: %w", err)
	}
	s := applyOptions(opts)
	return &FabricGateway{cfg: cfg, logger: s.logger}, nil
}

func (g *FabricGateway) Connect(ctx context.Context, opts ConnectOptions) (Network, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := opts.Credential.Validate(); err != nil {
		return nil, fmt.Errorf("credential for %s: %w", opts.Label, err)
	}
	if opts.Channel == "" {
		return nil, errors.New("channel is required")
	}

	sdk, err := fabricsdk.Open(g.cfg.ConnectionProfile)
	if err != nil {
		return nil, err
	}

	connected := false
	defer func() {
		if !connected {
			sdk.Close()
		}
	}()

	mspClient, err := msp.New(sdk.Context(), msp.WithOrg(g.cfg.Org))
	if err != nil {
		return nil, fmt.Errorf("failed to create msp client: %w", err)
	}

	signer, err := mspClient.CreateSigningIdentity(
		mspctx.WithCert([]byte(opts.Credential.Certificate)),
		mspctx.WithPrivateKey([]byte(opts.Credential.PrivateKey)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load identity %s: %w", opts.Label, err)
	}

	client, err := channel.New(sdk.ChannelContext(opts.Channel, fabsdk.WithIdentity(signer)))
	if err != nil {
		return nil, fmt.Errorf("failed to open channel %s: %w", opts.Channel, err)
	}

	var targets []string
	if !opts.Discovery {
		profile, err := fabricsdk.ProfileFromSDK(sdk)
		if err != nil {
			return nil, err
		}
		targets = profile.OrgPeers(g.cfg.Org)
		if len(targets) == 0 {
			return nil, fmt.Errorf("discovery is disabled and no peers are declared for %s", g.cfg.Org)
		}
	}

	connected = true
	g.logger.Debug("Connected to channel",
		zap.String("identity", opts.Label),
		zap.String("channel", opts.Channel),
		zap.Bool("discovery", opts.Discovery),
	)

	return &fabricNetwork{
		sdk:     sdk,
		client:  client,
		channel: opts.Channel,
		targets: targets,
		cfg:     g.cfg,
	}, nil
}

type channelClient interface {
	Execute(request channel.Request, options ...channel.RequestOption) (channel.Response, error)
	Query(request channel.Request, options ...channel.RequestOption) (channel.Response, error)
}

type fabricNetwork struct {
	sdk       *fabsdk.FabricSDK
	client    channelClient
	channel   string
	targets   []string
	cfg       Config
	closeOnce sync.Once
}

func (n *fabricNetwork) Channel() string {
	return n.channel
}

func (n *fabricNetwork) Contract(chaincode, name string) (Contract, error) {
	if chaincode == "" {
		return nil, errors.New("chaincode is required")
	}
	return &fabricContract{network: n, chaincode: chaincode, name: name}, nil
}

func (n *fabricNetwork) Close() error {
	n.closeOnce.Do(func() {
		if n.sdk != nil {
			n.sdk.Close()
		}
	})
	return nil
}

func (n *fabricNetwork) invoke(ctx context.Context, c *fabricContract, fn string, args []string, submit bool) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewError(c.name, fn, err)
	}

	req := channel.Request{
		ChaincodeID: c.chaincode,
		Fcn:         QualifiedName(c.name, fn),
		Args:        toArgs(args),
	}

	var (
		resp channel.Response
		err  error
	)
	if submit {
		resp, err = n.client.Execute(req, n.requestOptions(ctx, fab.Execute, n.cfg.ExecuteTimeout)...)
	} else {
		resp, err = n.client.Query(req, n.requestOptions(ctx, fab.Query, n.cfg.QueryTimeout)...)
	}
	if err != nil {
		return nil, NewError(c.name, fn, err)
	}
	return resp.Payload, nil
}

// requestOptions maps the context deadline onto the SDK timeout, since channel calls take no context.
func (n *fabricNetwork) requestOptions(ctx context.Context, kind fab.TimeoutType, fallback time.Duration) []channel.RequestOption {
	timeout := fallback
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}

	opts := []channel.RequestOption{channel.WithTimeout(kind, timeout)}
	if len(n.targets) > 0 {
		opts = append(opts, channel.WithTargetEndpoints(n.targets...))
	}
	return opts
}

type fabricContract struct {
	network   *fabricNetwork
	chaincode string
	name      string
}

func (c *fabricContract) Name() string {
	return c.name
}

func (c *fabricContract) SubmitTransaction(ctx context.Context, fn string, args ...string) ([]byte, error) {
	return c.network.invoke(ctx, c, fn, args, true)
}

func (c *fabricContract) EvaluateTransaction(ctx context.Context, fn string, args ...string) ([]byte, error) {
	return c.network.invoke(ctx, c, fn, args, false)
}

func toArgs(args []string) [][]byte {
	out := make([][]byte, len(args))
	for i, a := range args {
		out[i] = []byte(a)
	}
	return out
}
