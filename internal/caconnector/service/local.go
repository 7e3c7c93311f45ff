package service

import (
	"maps"

	validation "github.com/jellydator/validation"

	caDomain "github.com/allisson/caconnectors/internal/caconnector/domain"
	customValidation "github.com/allisson/caconnectors/internal/validation"
)

// LocalType is the type identifier of the file based local CA.
const LocalType = "local"

// Configuration keys of the local CA.
const (
	LocalCAKey             = "cakey"
	LocalCACert            = "cacert"
	LocalOpenSSLConfig     = "openssl.cnf"
	LocalWorkingDir        = "WorkingDir"
	LocalCSRDir            = "CSRDir"
	LocalCertificateDir    = "CertificateDir"
	LocalCRL               = "CRL"
	LocalCRLValidityPeriod = "CRL_Validity_Period"
	LocalCRLOverlapPeriod  = "CRL_Overlap_Period"
)

var localOptions = map[string]caDomain.OptionDescription{
	LocalCAKey:             {Type: "string", Description: "The file containing the private key of the CA."},
	LocalCACert:            {Type: "string", Description: "The file containing the certificate of the CA."},
	LocalOpenSSLConfig:     {Type: "string", Description: "The openssl config file used to sign requests."},
	LocalWorkingDir:        {Type: "string", Description: "The directory the CA works in."},
	LocalCSRDir:            {Type: "string", Description: "The directory where certificate requests are stored."},
	LocalCertificateDir:    {Type: "string", Description: "The directory where issued certificates are stored."},
	LocalCRL:               {Type: "string", Description: "The file containing the certificate revocation list."},
	LocalCRLValidityPeriod: {Type: "int", Description: "Number of days the CRL is valid."},
	LocalCRLOverlapPeriod:  {Type: "int", Description: "Number of days before expiry the CRL is regenerated."},
}

// LocalConnector is a CA connector backed by key and certificate files on the server.
type LocalConnector struct {
	name   string
	config map[string]string
}

// Name returns the connector name.
func (l *LocalConnector) Name() string { return l.name }

// Type returns LocalType.
func (l *LocalConnector) Type() string { return LocalType }

// Config returns a copy of the configuration.
func (l *LocalConnector) Config() map[string]string { return maps.Clone(l.config) }

// LocalFactory builds LocalConnectors. No key is required, so an empty configuration is
// accepted; unknown keys are rejected.
type LocalFactory struct{}

// NewLocalFactory creates the factory for the local CA type.
func NewLocalFactory() *LocalFactory {
	return &LocalFactory{}
}

// New validates config and returns a LocalConnector.
func (f *LocalFactory) New(name string, config map[string]string) (Connector, error) {
	if config == nil {
		config = map[string]string{}
	}

	keys := make([]*validation.KeyRules, 0, len(localOptions))
	for key, option := range localOptions {
		rules := []validation.Rule{validation.Length(0, 2000)}
		if option.Type == "int" {
			rules = append(rules, customValidation.PositiveInteger)
		}
		keys = append(keys, validation.Key(key, rules...).Optional())
	}

	if err := validation.Validate(config, validation.Map(keys...)); err != nil {
		return nil, caDomain.InvalidConfig(LocalType, err)
	}

	return &LocalConnector{name: name, config: maps.Clone(config)}, nil
}

// Options describes the configuration keys of the local CA.
func (f *LocalFactory) Options() map[string]caDomain.OptionDescription {
	return maps.Clone(localOptions)
}
