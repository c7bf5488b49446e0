package led

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
	Short: "Print the information of a LED",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		info, err := client.GetLedInfo(ctx, index)
		if err != nil {
			return err
		}
		brightness, err := client.GetLedBrightness(ctx, index)
		if err != nil {
			return err
		}

		tab := table.Table{
			Headers: []string{"Index", "Name", "Subname", "Max", "Brightness"},
			Rows: [][]string{
				{
					strconv.Itoa(int(index)),
					info.LedName.String(),
					info.LedSubname.String(),
					strconv.Itoa(int(info.MaxBrightness)),
					strconv.Itoa(int(brightness)),
				},
			},
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
	Command.AddCommand(infoCmd)
}
