package sizes

import (
	"fmt"
	"slices"

	"github.com/avarner/serbench/cmd/util"
	"github.com/avarner/serbench/lib/document"
	"github.com/avarner/serbench/lib/serializer"
	"github.com/spf13/cobra"
)

var (
	// SizesCmd prints the encoded size of both sample variants for
	// every registered serializer
	SizesCmd = &cobra.Command{
		Use:     "sizes",
		Short:   "Report encoded document sizes for all serializers",
		RunE:    run,
		PreRunE: processConfig,
	}

	sizesSkip []string
)

func init() {
	// initialize viper
	cobra.OnInitialize(util.InitConfig)

	// add flags
	key := "skip"
	SizesCmd.Flags().String(key, "", util.WrapString("Serializers to skip (comma separated - e.g. gob,json)"))
}

// processConfig reads the configuration from the command line flags and environment variables
func processConfig(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	sizesSkip = util.SkipList()
	return nil
}

func run(_ *cobra.Command, _ []string) error {
	small := document.NewSample(document.SmallContentSize)
	large := document.NewSample(document.LargeContentSize)

	fmt.Println("Size after serialization:")

	for _, name := range serializer.Names() {
		if slices.Contains(sizesSkip, name) {
			continue
		}

		s, err := serializer.Get(name)
		if err != nil {
			return err
		}

		smallData, err := s.Serialize(small)
		if err != nil {
			return fmt.Errorf("%s failed to serialize small sample: %v", name, err)
		}

		largeData, err := s.Serialize(large)
		if err != nil {
			return fmt.Errorf("%s failed to serialize large sample: %v", name, err)
		}

		fmt.Printf("%s\n", name)
		fmt.Printf("    small: %d bytes\n", len(smallData))
		fmt.Printf("    large: %d bytes\n", len(largeData))
	}

	return nil
}
