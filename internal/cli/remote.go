package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weiawesome/snowflake128/internal/client"
	pb "github.com/weiawesome/snowflake128/proto/id"
)

// ErrInvalidID is returned by validate when the service rejects the id.
var ErrInvalidID = errors.New("invalid id")

func addKindFlag(cmd *cobra.Command, kind *string) {
	cmd.Flags().StringVarP(kind, "kind", "k", "snowflake", "ID kind: snowflake, uuid, ulid, ksuid, nanoid or cuid2")
}

func newGenerateCommand(opts *rootOptions) *cobra.Command {
	var (
		kind   string
		entity string
		count  int
		stream bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate IDs from the ID service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := pb.ParseIDType(kind)
			if err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}
			out := cmd.OutOrStdout()

			return opts.withClient(cmd.Context(), func(ctx context.Context, c *client.IDClient) error {
				if stream {
					return c.Stream(ctx, t, entity, count, func(id string) error {
						_, err := fmt.Fprintln(out, id)
						return err
					})
				}
				if count == 1 {
					id, err := c.GenerateID(ctx, t, entity)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(out, id)
					return err
				}
				ids, err := c.GenerateBatch(ctx, t, entity, count)
				if err != nil {
					return err
				}
				for _, id := range ids {
					fmt.Fprintln(out, id)
				}
				return nil
			})
		},
	}
	addKindFlag(cmd, &kind)
	cmd.Flags().StringVarP(&entity, "entity", "e", "", "Entity name or numeric tag")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of IDs")
	cmd.Flags().BoolVar(&stream, "stream", false, "Receive IDs over a server stream")
	return cmd
}

func newParseCommand(opts *rootOptions) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "parse <id>",
		Short: "Parse an ID with the ID service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := pb.ParseIDType(kind)
			if err != nil {
				return err
			}
			return opts.withClient(cmd.Context(), func(ctx context.Context, c *client.IDClient) error {
				resp, err := c.Parse(ctx, t, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd, resp)
			})
		},
	}
	addKindFlag(cmd, &kind)
	return cmd
}

func newValidateCommand(opts *rootOptions) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "validate <id>",
		Short: "Check an ID with the ID service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := pb.ParseIDType(kind)
			if err != nil {
				return err
			}
			return opts.withClient(cmd.Context(), func(ctx context.Context, c *client.IDClient) error {
				resp, err := c.Validate(ctx, t, args[0])
				if err != nil {
					return err
				}
				if !resp.GetValid() {
					return fmt.Errorf("%w: %s", ErrInvalidID, resp.GetReason())
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "valid")
				return err
			})
		},
	}
	addKindFlag(cmd, &kind)
	return cmd
}
