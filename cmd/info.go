package cmd

import (
	"bytes"
	"strconv"

	"github.com/markusressel/lednice/cmd/global"
	"github.com/markusressel/lednice/internal/ui"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the device and LED information of the running daemon",
	Long:  `Queries the device descriptor and all LEDs using the control transport and prints them as a list`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		global.LoadConfig()

		client, ctx, cancel, err := global.Connect()
		if err != nil {
			return err
		}
		defer cancel()
		defer client.Close()

		info, err := client.GetInfo(ctx)
		if err != nil {
			return err
		}
		ui.Printfln("> %s", info.DevName.String())

		var rows [][]string
		for index := 0; index < int(info.LedCount); index++ {
			ledInfo, err := client.GetLedInfo(ctx, uint16(index))
			if err != nil {
				ui.Warning("Unable to read info of led %d: %v", index, err)
				continue
			}

			brightnessText := "N/A"
			brightness, err := client.GetLedBrightness(ctx, uint16(index))
			if err == nil {
				brightnessText = strconv.Itoa(int(brightness))
			}

			rows = append(rows, []string{
				strconv.Itoa(index),
				ledInfo.LedName.String(),
				ledInfo.LedSubname.String(),
				strconv.Itoa(int(ledInfo.MaxBrightness)),
				brightnessText,
			})
		}

		tab := table.Table{
			Headers: []string{"Index", "Name", "Subname", "Max", "Brightness"},
			Rows:    rows,
		}
		var buf bytes.Buffer
		if err := tab.WriteTable(&buf, global.TableConfig()); err != nil {
			return err
		}
		ui.Printfln("%s", buf.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
