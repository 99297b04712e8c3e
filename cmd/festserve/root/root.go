package root

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"pkg.festserve.dev/festserve-cli/cmd/internal/clients/api"
	"pkg.festserve.dev/festserve-cli/cmd/internal/controllers/gate"
	"pkg.festserve.dev/festserve-cli/cmd/internal/models"
	"pkg.festserve.dev/festserve-cli/cmd/internal/services/auth"
	"pkg.festserve.dev/festserve-cli/cmd/internal/services/campaign"
	credconfig "pkg.festserve.dev/festserve-cli/cmd/internal/services/config"
	"pkg.festserve.dev/festserve-cli/cmd/internal/services/session"
	"pkg.festserve.dev/festserve-cli/cmd/tea/component/program"
	"pkg.festserve.dev/festserve-cli/cmd/tea/style"
	"pkg.festserve.dev/festserve-cli/common/config"
	"pkg.festserve.dev/festserve-cli/common/logger"
	"pkg.festserve.dev/festserve-cli/common/printer"
)

const rootCmdName = "festserve"

// HandlerFactory builds the handler once flags are parsed.
type HandlerFactory func(cmd *cobra.Command) (HandlerInterface, error)

// NewRootCmd returns the command tree.
// Usage: `festserve`.
func NewRootCmd(newHandler HandlerFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           rootCmdName,
		Short:         "FestServe advertiser client",
		Long:          style.Header("FestServe", "Log in and follow your campaigns from the terminal"),
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.SetDebugMode(cmd)
			if !program.IsInteractive() {
				return cmd.Help()
			}
			h, err := newHandler(cmd)
			if err != nil {
				return err
			}
			return h.Interactive(cmd.Context())
		},
	}

	loginCmd := getLoginCmd(newHandler)
	logoutCmd := getLogoutCmd(newHandler)
	campaignsCmd, showCmd := getCampaignsCmd(newHandler)
	whoamiCmd := getWhoAmICmd(newHandler)
	versionCmd := getVersionCmd(newHandler)

	campaignsCmd.AddCommand(showCmd)
	rootCmd.AddCommand(loginCmd, logoutCmd, campaignsCmd, whoamiCmd, versionCmd)

	config.AddConfigFlag(rootCmd)
	logger.AddLogFlag(rootCmd, loginCmd, logoutCmd, campaignsCmd, showCmd, whoamiCmd)

	return rootCmd
}

// Usage: `festserve login [--email <email>] [--password <password> | --password-stdin]`.
func getLoginCmd(newHandler HandlerFactory) *cobra.Command {
	var flags models.LoginFlags
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with your advertiser email and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.SetDebugMode(cmd)
			h, err := newHandler(cmd)
			if err != nil {
				return err
			}
			return h.Login(cmd.Context(), flags)
		},
	}
	cmd.Flags().StringVar(&flags.Email, "email", "", "Advertiser email")
	cmd.Flags().StringVar(&flags.Password, "password", "", "Advertiser password")
	cmd.Flags().BoolVar(&flags.PasswordStdin, "password-stdin", false, "Read the password from stdin")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")
	return cmd
}

// Usage: `festserve logout`.
func getLogoutCmd(newHandler HandlerFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.SetDebugMode(cmd)
			h, err := newHandler(cmd)
			if err != nil {
				return err
			}
			return h.Logout()
		},
	}
}

// Usage: `festserve campaigns [--strict]` and `festserve campaigns show <id>`.
func getCampaignsCmd(newHandler HandlerFactory) (*cobra.Command, *cobra.Command) {
	var listFlags models.ListCampaignsFlags
	campaignsCmd := &cobra.Command{
		Use:     "campaigns",
		Aliases: []string{"campaign"},
		Short:   "List your campaigns",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.SetDebugMode(cmd)
			h, err := newHandler(cmd)
			if err != nil {
				return err
			}
			return h.Campaigns(cmd.Context(), listFlags)
		},
	}
	campaignsCmd.Flags().BoolVar(&listFlags.Strict, "strict", false,
		"Fail with an error instead of printing an empty list when the fetch fails")

	showCmd := &cobra.Command{
		Use:   "show <campaign-id>",
		Short: "Show a campaign with its scan count and snapshots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.SetDebugMode(cmd)
			h, err := newHandler(cmd)
			if err != nil {
				return err
			}
			return h.ShowCampaign(cmd.Context(), models.ShowCampaignFlags{ID: args[0]})
		},
	}
	return campaignsCmd, showCmd
}

// Usage: `festserve whoami`.
func getWhoAmICmd(newHandler HandlerFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the advertiser you are logged in as",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger.SetDebugMode(cmd)
			h, err := newHandler(cmd)
			if err != nil {
				return err
			}
			return h.WhoAmI(cmd.Context())
		},
	}
}

// Usage: `festserve version`.
func getVersionCmd(newHandler HandlerFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the current FestServe CLI version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := newHandler(cmd)
			if err != nil {
				return err
			}
			return h.Version()
		},
	}
}

// newHandler wires the production dependencies from the resolved config.
func newHandler(cmd *cobra.Command) (HandlerInterface, error) {
	cfg, err := config.GetConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger.Debugf("api %s, env %s, timeout %s", cfg.APIURL, cfg.Env, cfg.Timeout)

	configService, err := credconfig.NewService(cfg.Env)
	if err != nil {
		return nil, err
	}
	store := session.NewConfigStore(configService)
	apiClient := api.NewClient(cfg.APIURL, cfg.Timeout, store)

	return NewHandler(
		AppVersion,
		auth.NewService(apiClient, store),
		campaign.NewService(apiClient),
		apiClient,
		gate.New(store),
	), nil
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	defer logger.PrintLogs()

	if err := NewRootCmd(newHandler).ExecuteContext(ctx); err != nil {
		reportError(err)
		return 1
	}
	return 0
}

// reportError prints err for the user. Expected outcomes stay out of the
// error log so they are not sent to Sentry.
func reportError(err error) {
	switch {
	case errors.Is(err, gate.ErrLogin):
		logger.Debug(err.Error())
		printer.Errorf("Login required, please run `%s login`\n", rootCmdName)
	case errors.Is(err, auth.ErrLoginFailed), errors.Is(err, ErrLoginCancelled):
		logger.Debug(err.Error())
		printer.Errorln(err.Error())
	default:
		logger.Errors(err)
		printer.Errorln(err.Error())
	}
}
