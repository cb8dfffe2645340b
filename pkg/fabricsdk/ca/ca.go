// Package ca registers and enrolls identities with a Fabric certificate authority.
package ca

import (
	"context"
	"errors"

	"github.com/chainsafe/fabric-notary-gateway/pkg/identity"
)

// ErrRegistrarMismatch is returned when a registration names a registrar other than
// the one the connection profile authenticates as.
var ErrRegistrarMismatch = errors.New("registrar does not match the connection profile")

// ErrAlreadyRegistered is returned when the CA already knows the enrollment id.
var ErrAlreadyRegistered = errors.New("identity is already registered with the CA")

// RegistrationRequest describes a new identity to register.
type RegistrationRequest struct {
	EnrollmentID string
	Affiliation  string
	// Registrar is the wallet label of the identity authorising the registration.
	Registrar  string
	Attributes []identity.Attribute
}

// Enrollment is the material issued by the CA on enrollment. Both fields are PEM encoded.
type Enrollment struct {
	Certificate string
	PrivateKey  string
}

// Client is the CA surface used by the registration service.
//
//go:generate mockery --name Client --output mocks --outpkg mocks --filename mock_client.go --with-expecter
type Client interface {
	// Register creates the identity and returns its one-time enrollment secret.
	Register(ctx context.Context, req *RegistrationRequest) (string, error)
	// Enroll exchanges the secret for a certificate embedding the requested attributes.
	Enroll(ctx context.Context, enrollmentID, secret string, attrReqs []identity.AttributeRequest) (*Enrollment, error)
}
