// Package cli implements the idctl command line tool.
package cli

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/weiawesome/snowflake128/internal/client"
	pkgconfig "github.com/weiawesome/snowflake128/pkg/config"
)

// DefaultAddr is the ID service address used when neither --addr nor
// IDCTL_ADDR is set.
const DefaultAddr = "127.0.0.1:50053"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type rootOptions struct {
	addr    string
	timeout time.Duration
}

// NewRoot builds the idctl command tree.
func NewRoot() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "idctl",
		Short:         "Generate and inspect 128-bit snowflake IDs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.addr, "addr", pkgconfig.GetEnv("IDCTL_ADDR", DefaultAddr), "ID service gRPC address")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 5*time.Second, "Timeout for calls to the ID service")

	root.AddCommand(
		newDecodeCommand(),
		newEncodeCommand(),
		newGenerateCommand(opts),
		newParseCommand(opts),
		newValidateCommand(opts),
	)
	return root
}

// withClient connects to the ID service for the duration of fn.
func (o *rootOptions) withClient(ctx context.Context, fn func(context.Context, *client.IDClient) error) error {
	c, err := client.NewIDClient(o.addr)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()
	return fn(ctx, c)
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
