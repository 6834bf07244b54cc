package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RiyanshKarani011235/supercollider/server/pool"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show build-time node storage constants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := struct {
				PoolCapacity int64 `json:"pool_capacity"`
				MinBlockSize int   `json:"min_block_size"`
			}{
				PoolCapacity: pool.DefaultCapacity,
				MinBlockSize: pool.MinBlockSize,
			}
			if jsonOut {
				return printJSON(info)
			}
			fmt.Printf("pool capacity: %d bytes (%d MiB)\n",
				info.PoolCapacity, info.PoolCapacity>>20)
			fmt.Printf("minimum block: %d bytes\n", info.MinBlockSize)
			return nil
		},
	}
}
