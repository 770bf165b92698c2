package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/weiawesome/snowflake128/pkg/snowflake"
)

type decodedID struct {
	ID   string `json:"id"`
	Hex  string `json:"hex"`
	Time string `json:"time"`
	snowflake.Fields
}

func newDecodedID(id snowflake.ID) decodedID {
	return decodedID{
		ID:     id.String(),
		Hex:    id.Hex(),
		Time:   id.Time().UTC().Format(time.RFC3339Nano),
		Fields: id.Fields(),
	}
}

func newDecodeCommand() *cobra.Command {
	var hexInput bool

	cmd := &cobra.Command{
		Use:   "decode <id>",
		Short: "Decode a snowflake ID locally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parse := snowflake.Parse
			if hexInput {
				parse = snowflake.ParseHex
			}
			id, err := parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			return printJSON(cmd, newDecodedID(id))
		},
	}
	cmd.Flags().BoolVar(&hexInput, "hex", false, "Read the id as 32 hex characters")
	return cmd
}

func newEncodeCommand() *cobra.Command {
	var (
		at     string
		fields snowflake.Fields
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Build a snowflake ID from its fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if at != "" {
				ms, err := parseTimestamp(at)
				if err != nil {
					return err
				}
				fields.TimestampMs = ms
			}
			id, err := snowflake.Encode(fields)
			if err != nil {
				return err
			}
			return printJSON(cmd, newDecodedID(id))
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "Timestamp as RFC3339, unix milliseconds, or \"now\"")
	cmd.Flags().Uint64Var(&fields.TimestampMs, "timestamp", 0, "Milliseconds since the snowflake epoch")
	cmd.Flags().Uint32Var(&fields.EntityType, "entity", 0, "Entity type tag")
	cmd.Flags().Uint32Var(&fields.Counter, "counter", 0, "Counter value")
	cmd.Flags().Uint32Var(&fields.APIVersion, "version", 0, "API version")
	cmd.Flags().Uint32Var(&fields.NodeID, "node", 0, "Node ID")
	cmd.MarkFlagsMutuallyExclusive("at", "timestamp")
	return cmd
}

// parseTimestamp converts --at into milliseconds since the snowflake epoch.
func parseTimestamp(s string) (uint64, error) {
	var t time.Time
	switch {
	case s == "now":
		t = time.Now()
	default:
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			t = time.UnixMilli(ms)
		} else if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
			t = parsed
		} else {
			return 0, fmt.Errorf("invalid --at %q; expected RFC3339, unix ms or now", s)
		}
	}
	return snowflake.Since(t)
}
