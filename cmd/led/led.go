package led

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var ledId int

var Command = &cobra.Command{
	Use:              "led",
	Short:            "LED related commands",
	Long:             ``,
	TraverseChildren: true,
}

func init() {
	Command.PersistentFlags().IntVarP(
		&ledId,
		"id", "i",
		-1,
		"LED index as reported by 'lednice info'",
	)
	_ = Command.MarkPersistentFlagRequired("id")
}

func getLedIndex() (uint16, error) {
	if ledId < 0 || ledId > 0xFFFF {
		return 0, errors.New(fmt.Sprintf("Invalid led index: %d", ledId))
	}
	return uint16(ledId), nil
}
