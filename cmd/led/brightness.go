package led

import (
	"fmt"
	"strconv"

	"github.com/markusressel/lednice/cmd/global"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var brightnessCmd = &cobra.Command{
	Use:   "brightness",
	Short: "Get/Set the brightness of a LED to the given value ([0..255])",
	Long:  ``,
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		index, err := getLedIndex()
		if err != nil {
			return err
		}
		global.LoadConfig()

		client, ctx, cancel, err := global.Connect()
		if err != nil {
			return err
		}
		defer cancel()
		defer client.Close()

		if len(args) > 0 {
			value, err := strconv.ParseUint(args[0], 10, 8)
			if err != nil {
				return fmt.Errorf("brightness must be in range [0..255]: %s", args[0])
			}
			if err := client.CheckLedIndex(ctx, index); err != nil {
				return err
			}
			return client.SetLedBrightness(ctx, index, uint8(value))
		}

		brightness, err := client.GetLedBrightness(ctx, index)
		if err != nil {
			return err
		}
		fmt.Printf("%d", brightness)
		return nil
	},
}

func init() {
	Command.AddCommand(brightnessCmd)
}
