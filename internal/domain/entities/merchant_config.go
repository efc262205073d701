package entities

import (
	"errors"
	"strings"
)

// ReturnMethod is the HTTP method the gateway uses when redirecting the
// customer back to the shop after payment.
type ReturnMethod string

const (
	ReturnMethodGet  ReturnMethod = "GET"
	ReturnMethodPost ReturnMethod = "POST"
)

// SandboxAPIURL is the testing endpoint of the acquiring gateway. It is
// the default until a merchant goes live and overrides APIURL.
const SandboxAPIURL = "https://iapi.iplatebnibrana.csob.cz/api/v1.9"

var (
	ErrMissingMerchantID        = errors.New("missing merchant id")
	ErrMissingPrivateKeyPath    = errors.New("missing private key path")
	ErrMissingBankPublicKeyPath = errors.New("missing bank public key path")
	ErrMissingShopName          = errors.New("missing shop name")
)

// MerchantConfig parameterizes one gateway client for one merchant.
//
// Domain notes:
//   - Constructed once per process/session via NewMerchantConfig and never
//     shared across distinct merchant identities.
//   - PrivateKeyPath must point outside any publicly served directory; that
//     is a deployment constraint, not something this type can enforce.
//   - ReturnURL well-formedness is the caller's problem, the descriptor
//     only carries it.
type MerchantConfig struct {
	APIURL             string       `json:"api_url"`
	BankPublicKeyPath  string       `json:"bank_public_key_path"`
	MerchantID         string       `json:"merchant_id"`
	PrivateKeyPath     string       `json:"private_key_path"`
	PrivateKeyPassword string       `json:"private_key_password,omitempty"`
	ReturnURL          string       `json:"return_url"`
	ReturnMethod       ReturnMethod `json:"return_method"`
	ShopName           string       `json:"shop_name"`
	ClosePayment       bool         `json:"close_payment"`
}

// MerchantConfigParams is the constructor input for MerchantConfig.
// ReturnURL, APIURL and PrivateKeyPassword are optional.
type MerchantConfigParams struct {
	MerchantID         string
	PrivateKeyPath     string
	PrivateKeyPassword string
	BankPublicKeyPath  string
	ShopName           string
	ReturnURL          string
	APIURL             string
}

// NewMerchantConfig builds a fully populated descriptor. Mandatory fields
// are rejected when empty so a misconfigured merchant fails at startup
// instead of at the first signed call. An empty APIURL keeps the sandbox
// default; an empty PrivateKeyPassword means the key needs none.
func NewMerchantConfig(p MerchantConfigParams) (MerchantConfig, error) {
	merchantID := strings.TrimSpace(p.MerchantID)
	privateKeyPath := strings.TrimSpace(p.PrivateKeyPath)
	bankPublicKeyPath := strings.TrimSpace(p.BankPublicKeyPath)
	shopName := strings.TrimSpace(p.ShopName)

	if merchantID == "" {
		return MerchantConfig{}, ErrMissingMerchantID
	}
	if privateKeyPath == "" {
		return MerchantConfig{}, ErrMissingPrivateKeyPath
	}
	if bankPublicKeyPath == "" {
		return MerchantConfig{}, ErrMissingBankPublicKeyPath
	}
	if shopName == "" {
		return MerchantConfig{}, ErrMissingShopName
	}

	apiURL := strings.TrimSpace(p.APIURL)
	if apiURL == "" {
		apiURL = SandboxAPIURL
	}

	return MerchantConfig{
		APIURL:             apiURL,
		BankPublicKeyPath:  bankPublicKeyPath,
		MerchantID:         merchantID,
		PrivateKeyPath:     privateKeyPath,
		PrivateKeyPassword: strings.TrimSpace(p.PrivateKeyPassword),
		ReturnURL:          strings.TrimSpace(p.ReturnURL),
		ReturnMethod:       ReturnMethodPost,
		ShopName:           shopName,
		ClosePayment:       true,
	}, nil
}

// HasKeyPassword reports whether the merchant private key is protected by
// a password.
func (c MerchantConfig) HasKeyPassword() bool {
	return c.PrivateKeyPassword != ""
}
