package cli

import (
	"github.com/mrz1836/go-gitlab-repo/internal/config"
	appErrors "github.com/mrz1836/go-gitlab-repo/internal/errors"
	"github.com/mrz1836/go-gitlab-repo/internal/gitlab"
)

// clientFactory builds the API client from the global flags. Tests
// replace it to inject a mock client.
//
//nolint:gochecknoglobals // Overridable factory enables test injection
var clientFactory = buildClient

func buildClient(flags *Flags) (gitlab.Client, error) {
	cfg, err := config.Load(flags.ConfigFile)
	if err != nil {
		return nil, err
	}

	token, err := cfg.ResolveToken()
	if err != nil {
		return nil, err
	}

	dispatcher, err := gitlab.NewHTTPDispatcher(gitlab.DispatcherOptions{
		BaseURL:            cfg.BaseURL,
		Token:              token,
		Timeout:            cfg.Timeout(),
		InsecureSkipVerify: cfg.Insecure,
	}, logger, logConfig())
	if err != nil {
		return nil, err
	}

	return gitlab.NewClient(dispatcher, logger, cfg.DownloadDir), nil
}

// requireProject validates that --project was given
func requireProject(flags *Flags) error {
	if flags.ProjectID <= 0 {
		return appErrors.RequiredFieldError("project")
	}
	return nil
}
