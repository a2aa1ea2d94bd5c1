package config

import (
	"github.com/jonwraymond/appcheck/health"
	"github.com/jonwraymond/appcheck/probe"
)

// Build turns each configured check into a health.Check, in file order.
func (c *Config) Build() ([]*health.Check, error) {
	checks := make([]*health.Check, 0, len(c.Checks))
	for _, cc := range c.Checks {
		check, err := cc.Build()
		if err != nil {
			return nil, err
		}
		checks = append(checks, check)
	}
	return checks, nil
}

// Build creates the probe described by c and wraps it as a health.Check.
func (c CheckConfig) Build() (*health.Check, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	timeout, _ := c.TimeoutDuration()

	var (
		name string
		fn   health.CheckFunc
	)
	switch c.Type {
	case TypeTCP:
		p := &probe.TCP{Address: c.Address, Timeout: timeout}
		name, fn = p.Name(), p.Check
	case TypeHTTP:
		p := &probe.HTTP{URL: c.URL, ExpectedStatus: c.ExpectedStatus, Timeout: timeout}
		name, fn = p.Name(), p.Check
	case TypeMemory:
		p := &probe.Memory{Threshold: c.Threshold}
		name, fn = p.Name(), p.Check
		if timeout > 0 {
			fn = probe.WithTimeout(timeout, fn)
		}
	case TypeS3:
		p := probe.NewS3Bucket(probe.S3Config{
			Endpoint:    c.Endpoint,
			Region:      c.Region,
			Bucket:      c.Bucket,
			AccessKeyID: c.AccessKeyID,
			SecretKey:   c.SecretKey,
		})
		p.Timeout = timeout
		name, fn = p.Name(), p.Check
	}

	if c.Name != "" {
		name = c.Name
	}
	return health.NewCheck(name, fn)
}
