// Package identity holds the domain model shared by the registration, session and notary packages.
package identity

import (
	"errors"
	"strconv"
	"time"
)

// X509Type is the only credential type issued by the Fabric CA flow.
const X509Type = "X.509"

// Attribute names embedded into the enrollment certificate.
const (
	AttrID   = "id"
	AttrName = "name"
	AttrRole = "role"
)

// ErrInvalidCredential is returned when a credential lacks a certificate, key or MSP id.
var ErrInvalidCredential = errors.New("invalid credential")

// Credential is an X.509 identity as held by a wallet.
type Credential struct {
	Version     int    `json:"version"`
	Type        string `json:"type"`
	MSPID       string `json:"mspId"`
	Certificate string `json:"certificate"`
	PrivateKey  string `json:"privateKey"`
}

// NewX509Credential builds a version 1 X.509 credential.
func NewX509Credential(mspID, certificate, privateKey string) *Credential {
	return &Credential{
		Version:     1,
		Type:        X509Type,
		MSPID:       mspID,
		Certificate: certificate,
		PrivateKey:  privateKey,
	}
}

// Validate checks that the credential can be used to sign transactions.
func (c *Credential) Validate() error {
	if c == nil {
		return ErrInvalidCredential
	}
	if c.Certificate == "" || c.PrivateKey == "" || c.MSPID == "" {
		return ErrInvalidCredential
	}
	return nil
}

// Identity represents an application user known to the CA.
type Identity struct {
	ID         string
	Name       string
	Role       string
	Credential *Credential
}

// RegisterRequest is the input of a user registration.
type RegisterRequest struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// Attributes returns the certificate attributes for the request in a fixed order.
func (r *RegisterRequest) Attributes() []Attribute {
	return []Attribute{
		{Name: AttrID, Value: r.UserID, ECert: true},
		{Name: AttrName, Value: r.Name, ECert: true},
		{Name: AttrRole, Value: r.Role, ECert: true},
	}
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// Attribute is a name/value pair registered with the CA.
type Attribute struct {
	Name  string
	Value string
	ECert bool
}

// AttributeRequest asks the CA to embed a registered attribute into the issued certificate.
type AttributeRequest struct {
	Name     string
	Optional bool
}

// DefaultAttributeRequests requests the id, name and role attributes as mandatory.
func DefaultAttributeRequests() []AttributeRequest {
	return []AttributeRequest{
		{Name: AttrID, Optional: false},
		{Name: AttrName, Optional: false},
		{Name: AttrRole, Optional: false},
	}
}

// NotaryLogEntry is the payload of an addNotaryLog transaction.
// It is handed to the chaincode and never persisted here.
type NotaryLogEntry struct {
	LogID         string
	ParticipantID string
	Timestamp     string
	Type          string
	Text          string
}

// Args returns the positional chaincode arguments for the entry.
func (e *NotaryLogEntry) Args() []string {
	return []string{e.LogID, e.ParticipantID, e.Timestamp, e.Type, e.Text}
}

// Timestamp formats t as milliseconds since the Unix epoch.
func Timestamp(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
