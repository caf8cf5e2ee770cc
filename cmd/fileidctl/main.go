// Command fileidctl inspects and builds telemap file-identifier tokens.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"telemap/pkg/fileid"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		slog.Error("fileidctl exited with error", "error", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "fileidctl",
		Short:         "Inspect and build file-identifier tokens",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDecodeCommand(), newEncodeCommand())

	return root
}

func newDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <token>",
		Short: "Decode a file-identifier token into its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fileid.Decode(args[0])
			if err != nil {
				return fmt.Errorf("decode token: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "type:        %s\n", f.Type)
			fmt.Fprintf(out, "dc:          %d\n", f.DCID)
			fmt.Fprintf(out, "id:          %d\n", f.ID)
			fmt.Fprintf(out, "access_hash: %d\n", f.AccessHash)
			if f.Type.LocationScoped() {
				fmt.Fprintf(out, "volume_id:   %d\n", f.VolumeID)
				fmt.Fprintf(out, "secret:      %d\n", f.Secret)
				fmt.Fprintf(out, "local_id:    %d\n", f.LocalID)
			}

			return nil
		},
	}
}

func newEncodeCommand() *cobra.Command {
	var (
		kind       int
		dc         int
		id         int64
		accessHash int64
		volumeID   int64
		secret     int64
		localID    int
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Pack fields into a file-identifier token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := fileid.Encode(fileid.FileID{
				Type:       fileid.Type(kind),
				DCID:       dc,
				ID:         id,
				AccessHash: accessHash,
				VolumeID:   volumeID,
				Secret:     secret,
				LocalID:    localID,
			})
			if err != nil {
				return fmt.Errorf("encode token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().IntVar(&kind, "type", int(fileid.TypeDocument), "kind tag")
	cmd.Flags().IntVar(&dc, "dc", 0, "datacenter id")
	cmd.Flags().Int64Var(&id, "id", 0, "unique id")
	cmd.Flags().Int64Var(&accessHash, "access-hash", 0, "access hash")
	cmd.Flags().Int64Var(&volumeID, "volume-id", 0, "volume id (location kinds)")
	cmd.Flags().Int64Var(&secret, "secret", 0, "secret (location kinds)")
	cmd.Flags().IntVar(&localID, "local-id", 0, "local id (location kinds)")

	return cmd
}
