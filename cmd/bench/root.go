package bench

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"slices"
	"strconv"
	"testing"
	"time"

	"github.com/avarner/serbench/cmd/util"
	"github.com/avarner/serbench/lib/document"
	"github.com/avarner/serbench/lib/serializer"
	"github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// BenchCmd runs the in-process encode/decode benchmarks
	BenchCmd = &cobra.Command{
		Use:     "bench",
		Short:   "Run in-process serialization benchmarks",
		Long:    "Benchmark every registered serializer against the small and large sample document. Each benchmark is repeated for a number of rounds and the per-round ns/op results are aggregated.",
		RunE:    run,
		PreRunE: processBenchConfig,
	}

	benchRounds  = 3
	benchLargeKB = 1024
	benchSkip    = make([]string, 0)
)

// benchResult holds the aggregated outcome of one serializer/operation/size case
type benchResult struct {
	serializer string
	operation  string
	size       string
	encoded    int // encoded byte length of the sample
	hist       metrics.Histogram
}

func (r benchResult) name() string {
	return fmt.Sprintf("%s/%s/%s", r.serializer, r.operation, r.size)
}

func init() {
	// initialize viper
	cobra.OnInitialize(util.InitConfig)

	// add flags
	key := "skip"
	BenchCmd.Flags().String(key, "", util.WrapString("Serializers to skip (comma separated - e.g. gob,json)"))
	key = "rounds"
	BenchCmd.Flags().Int(key, 3, util.WrapString("How often each benchmark is repeated; ns/op is aggregated across rounds"))
	key = "large-size"
	BenchCmd.Flags().Int(key, 1024, util.WrapString("Content size of the large sample document (in KiB)"))
	key = "csv"
	BenchCmd.Flags().String(key, "", util.WrapString("Optional path to save benchmark results as CSV"))
}

// processBenchConfig reads the configuration from the command line flags and environment variables
func processBenchConfig(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	benchRounds = viper.GetInt("rounds")
	if benchRounds < 1 {
		benchRounds = 1
	}
	benchLargeKB = viper.GetInt("large-size")
	benchSkip = util.SkipList()

	return nil
}

func run(_ *cobra.Command, _ []string) error {

	fmt.Println("In-process serialization benchmarks")

	// Print configuration
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Printf("Rounds:     %d\n", benchRounds)
	fmt.Printf("Large size: %d KiB\n", benchLargeKB)
	fmt.Println()

	samples := []struct {
		name string
		doc  document.Document
	}{
		{"small", document.NewSample(document.SmallContentSize)},
		{"large", document.NewSample(benchLargeKB * 1024)},
	}

	registry := metrics.NewRegistry()
	results := make([]benchResult, 0)

	for _, name := range serializer.Names() {
		if slices.Contains(benchSkip, name) {
			continue
		}

		s, err := serializer.Get(name)
		if err != nil {
			return err
		}

		for _, sample := range samples {
			// One untimed encode pass up front. It provides the shared
			// input for the decode benchmark and surfaces codec errors
			// before any timed loop runs.
			encoded, err := s.Serialize(sample.doc)
			if err != nil {
				return fmt.Errorf("%s failed to serialize %s sample: %v", name, sample.name, err)
			}

			serRes := benchResult{
				serializer: name,
				operation:  "serialize",
				size:       sample.name,
				encoded:    len(encoded),
				hist:       metrics.GetOrRegisterHistogram(name+"/serialize/"+sample.name, registry, metrics.NewUniformSample(benchRounds)),
			}
			doc := sample.doc
			runRounds(serRes.hist, func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					if _, err := s.Serialize(doc); err != nil {
						panic(err)
					}
				}
			})
			results = append(results, serRes)
			printResult(serRes)

			desRes := benchResult{
				serializer: name,
				operation:  "deserialize",
				size:       sample.name,
				encoded:    len(encoded),
				hist:       metrics.GetOrRegisterHistogram(name+"/deserialize/"+sample.name, registry, metrics.NewUniformSample(benchRounds)),
			}
			runRounds(desRes.hist, func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					var out document.Document
					if err := s.Deserialize(encoded, &out); err != nil {
						panic(err)
					}
				}
			})
			results = append(results, desRes)
			printResult(desRes)
		}
	}

	// Write results to csv if specified
	if csvPath := viper.GetString("csv"); csvPath != "" {
		fmt.Printf("\nExporting results to CSV: %s\n", csvPath)
		if err := writeResultsToCSV(csvPath, results); err != nil {
			return fmt.Errorf("failed to export results to CSV: %v", err)
		}
		fmt.Println("Export complete")
	}

	return nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// runRounds repeats the benchmark function and records ns/op per round
func runRounds(hist metrics.Histogram, fn func(b *testing.B)) {
	for i := 0; i < benchRounds; i++ {
		result := testing.Benchmark(fn)
		hist.Update(result.NsPerOp())
	}
}

// printResult prints the aggregated result of a benchmark case in a formatted way
func printResult(r benchResult) {
	nsPerOp := math.Max(r.hist.Mean(), 1) // prevent division by zero
	opsPerSec := 1.0 / (nsPerOp / 1e9)

	fmt.Printf("%-36s%.0fns/op (%s/op)\t%.0f ops/sec\t%d bytes\n",
		r.name(), nsPerOp, time.Duration(int64(nsPerOp)), opsPerSec, r.encoded)
}

// writeResultsToCSV writes benchmark results to a CSV file
func writeResultsToCSV(csvPath string, results []benchResult) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	header := []string{
		"Case", "Serializer", "Operation", "Size", "EncodedBytes",
		"Rounds", "MeanNsPerOp", "MinNsPerOp", "MaxNsPerOp", "OpsPerSec",
		"LargeSizeKB",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %v", err)
	}

	// Write benchmark results
	for _, r := range results {
		nsPerOp := math.Max(r.hist.Mean(), 1)
		opsPerSec := 1.0 / (nsPerOp / 1e9)

		row := []string{
			r.name(),
			r.serializer,
			r.operation,
			r.size,
			strconv.Itoa(r.encoded),
			strconv.Itoa(benchRounds),
			fmt.Sprintf("%.0f", nsPerOp),
			strconv.FormatInt(r.hist.Min(), 10),
			strconv.FormatInt(r.hist.Max(), 10),
			fmt.Sprintf("%.0f", opsPerSec),
			strconv.Itoa(benchLargeKB),
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for case %s: %v", r.name(), err)
		}
	}

	return nil
}
