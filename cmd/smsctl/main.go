package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/osse101/SmsAuto_Go/internal/handler"
	"github.com/osse101/SmsAuto_Go/internal/record"
)

const defaultAddr = "http://localhost:8080"

var (
	addr       string
	apiKey     string
	recordPath string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "smsctl: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "smsctl",
		Short:         "Operate the SmsAuto verification code relay",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&addr, "addr", envOr("SMSCTL_ADDR", defaultAddr), "daemon base URL")
	flags.StringVar(&apiKey, "api-key", os.Getenv("API_KEY"), "API key sent as X-API-Key")
	flags.StringVar(&recordPath, "record-path", envOr("RECORD_PATH", record.DefaultPath), "verification code record file")

	root.AddCommand(newRecordCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newLogCmd())
	root.AddCommand(newSendCmd())
	return root
}

func newRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Show or delete the record file directly",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := record.NewStore(recordPath)
			rec, err := store.Read(cmd.Context())
			if errors.Is(err, record.ErrRecordNotFound) {
				return errors.New(record.MsgFileNotFound + store.FileName())
			}
			if err != nil {
				return err
			}
			data, err := record.Encode(rec)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete",
		Short: "Delete the record file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome := record.NewStore(recordPath).Delete(cmd.Context())
			if outcome.Failed() {
				return errors.New(outcome.Message())
			}
			fmt.Fprintln(cmd.OutOrStdout(), outcome.Message())
			return nil
		},
	})

	return cmd
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the listener status reported by the daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := newAPIClient(addr, apiKey).status(cmd.Context())
			if err != nil {
				return err
			}
			writeStatus(cmd.OutOrStdout(), st, isTerminal(cmd.OutOrStdout()))
			return nil
		},
	}
}

// writeStatus prints the rendered header on a terminal and plain key=value
// lines otherwise, so scripts never see the ✓/✗ marks.
func writeStatus(w io.Writer, st handler.StatusResponse, tty bool) {
	if tty {
		fmt.Fprintln(w, st.Text)
		return
	}
	fmt.Fprintf(w, "listener_enabled=%t\n", st.ListenerEnabled)
	fmt.Fprintf(w, "connected=%t\n", st.Connected)
	fmt.Fprintf(w, "sources=%s\n", strings.Join(st.Sources, ","))
	if st.Hint != "" {
		fmt.Fprintf(w, "hint=%s\n", st.Hint)
	}
}

func newLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Print the status header and the live log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := newAPIClient(addr, apiKey).log(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func newSendCmd() *cobra.Command {
	var req handler.IngestNotificationRequest

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Post a notification to the ingest endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newAPIClient(addr, apiKey).send(cmd.Context(), req)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case resp.Duplicate:
				fmt.Fprintln(out, "duplicate, ignored")
			case resp.CodeFound:
				fmt.Fprintln(out, "code: "+resp.Code)
			default:
				fmt.Fprintln(out, "no code found")
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.PackageName, "package", "", "package name of the posting app")
	flags.StringVar(&req.Title, "title", "", "notification title")
	flags.StringVar(&req.Text, "text", "", "notification text")
	flags.StringVar(&req.BigText, "big-text", "", "expanded notification text")
	flags.StringVar(&req.Key, "key", "", "notification key used for de-duplication")
	_ = cmd.MarkFlagRequired("package")

	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
