package poll

import (
	"routehealth/internal/config"
	"routehealth/internal/logger"
	"routehealth/internal/session"
)

// SessionOpener builds the production Opener from config: real SSH
// sessions through the terminal server, with the configured timeouts
// and the bgp-pattern timeout rule applied per command.
func SessionOpener(cfg *config.Config, log logger.Logger) Opener {
	user, password := cfg.Credentials()
	return func(target session.Target) (Runner, error) {
		s, err := session.Open(target, session.ConnectOptions{
			Credentials: session.Credentials{
				User:          user,
				Password:      password,
				StrictHostKey: cfg.SSH.StrictHostKeyChecking,
			},
			ProbeTimeout:  cfg.Timeouts.Probe,
			PromptTimeout: cfg.Timeouts.Prompt,
			Session: session.Options{
				DefaultTimeout: cfg.Timeouts.Command,
				Rules:          TimeoutRules(cfg.Timeouts.BGPCommand),
				Log:            log,
			},
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}
