package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config 启动配置,读取一次之后只读
type Config struct {
	Bind      string
	APIKey    string
	DLSession string
	Proxies   []string
	TLSCert   string
	TLSKey    string
	Probe     bool
}

var configKeys = []string{"bind", "api-key", "dl-session", "proxy", "tls-cert", "tls-key", "probe"}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "deeplx-relay",
		Short:         "Relay server exposing DeepL's web session API as a simple translate endpoint",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := configFromViper()
			if cfg.DLSession == "" {
				return errors.New("dl-session is required (flag --dl-session or env DEEPLX_DL_SESSION)")
			}
			if (cfg.TLSCert == "") != (cfg.TLSKey == "") {
				return errors.New("tls-cert and tls-key must be provided together")
			}
			return runServe(cfg)
		},
	}

	flags := cmd.Flags()
	flags.String("bind", "0.0.0.0:8080", "listen address")
	flags.String("api-key", "", "require callers to present this key as a Bearer token")
	flags.String("dl-session", "", "dl_session cookie value of a logged-in DeepL web session")
	flags.StringSlice("proxy", nil, "egress proxy url, repeatable; one outbound client per proxy")
	flags.String("tls-cert", "", "TLS certificate file")
	flags.String("tls-key", "", "TLS private key file")
	flags.Bool("probe", true, "probe egress connectivity at startup and daily")

	viper.SetEnvPrefix("DEEPLX")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, key := range configKeys {
		viper.BindPFlag(key, flags.Lookup(key))
	}

	return cmd
}

// configFromViper 命令行优先,环境变量兜底
func configFromViper() *Config {
	return &Config{
		Bind:      viper.GetString("bind"),
		APIKey:    viper.GetString("api-key"),
		DLSession: viper.GetString("dl-session"),
		Proxies:   viper.GetStringSlice("proxy"),
		TLSCert:   viper.GetString("tls-cert"),
		TLSKey:    viper.GetString("tls-key"),
		Probe:     viper.GetBool("probe"),
	}
}
