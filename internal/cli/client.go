package cli

import (
	"github.com/silebat/zenodo-go/pkg/config"
	"github.com/silebat/zenodo-go/pkg/errors"
	"github.com/silebat/zenodo-go/pkg/session"
	"github.com/silebat/zenodo-go/pkg/zenodo"
)

// newClient builds an API client from the flag, session, and config file
// layers. Precedence for the token: --token flag, then saved login, then
// config file. The --sandbox flag forces the sandbox environment; otherwise
// the environment recorded at login (or in the config file) wins.
func (c *CLI) newClient() (*zenodo.Client, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load config")
	}

	token := c.token
	sandbox := c.sandbox

	if token == "" {
		if sess, err := loadSession(); err == nil && sess != nil {
			token = sess.AccessToken
			sandbox = sandbox || sess.Sandbox
		}
	}
	if token == "" {
		token = cfg.AccessToken
		sandbox = sandbox || cfg.Sandbox
	}
	if token == "" {
		return nil, errors.New(errors.ErrCodeInvalidToken,
			"no access token (run 'zenodo login', pass --token, or set access_token in the config file)")
	}

	client, err := zenodo.New(zenodo.Config{
		AccessToken: token,
		Proxies:     cfg.Proxies,
		Sandbox:     sandbox,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create client")
	}
	return client, nil
}

// loadSession loads the saved CLI session, nil when not logged in.
func loadSession() (*session.Session, error) {
	store, err := session.NewStore()
	if err != nil {
		return nil, err
	}
	return store.Load()
}
