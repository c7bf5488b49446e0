package led

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/markusressel/lednice/cmd/global"
	"github.com/markusressel/lednice/internal/api"
	"github.com/markusressel/lednice/internal/configuration"
	"github.com/markusressel/lednice/internal/ui"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Plot the recent brightness values of a LED",
	Long:  `Fetches the brightness history of a LED from the REST api of the running daemon and plots it`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := getLedIndex()
		if err != nil {
			return err
		}
		global.LoadConfig()

		history, err := fetchHistory(configuration.CurrentConfig.Api, index)
		if err != nil {
			return err
		}

		if len(history.Values) == 0 {
			ui.Info("No brightness values recorded for led %d yet", index)
			return nil
		}

		graph := asciigraph.Plot(
			history.Values,
			asciigraph.Height(15),
			asciigraph.Width(100),
			asciigraph.LowerBound(0),
			asciigraph.UpperBound(255),
			asciigraph.Caption(fmt.Sprintf("led %d, avg %.1f", index, history.Avg)),
		)
		ui.Printfln("%s", graph)
		return nil
	},
}

func fetchHistory(config configuration.ApiConfig, index uint16) (*api.History, error) {
	if !config.Enabled {
		return nil, errors.New("the REST api is disabled, enable it to record the brightness history")
	}

	url := fmt.Sprintf("http://%s:%d/led/%d/history/", config.Host, config.Port, index)
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s for %s", resp.Status, url)
	}

	var history api.History
	if err := json.NewDecoder(resp.Body).Decode(&history); err != nil {
		return nil, err
	}
	return &history, nil
}

func init() {
	Command.AddCommand(historyCmd)
}
