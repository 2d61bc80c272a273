// ffnet-train: configurable single-example trainer
//
// Usage:
//
//	ffnet-train --topology=2,3,1 --lr=0.1 --epochs=100000 --plot=loss.png
//	ffnet-train --topology=4,8,3 --data=pairs.csv
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"ffnet/m"
	"ffnet/utils"

	"golang.org/x/exp/rand"
)

var (
	topology     = flag.String("topology", "2,3,1", "Layer widths, input layer first")
	learningRate = flag.Float64("lr", m.DefaultLearningRate, "Learning rate")
	epochs       = flag.Int("epochs", 100000, "Training steps, one randomly drawn pair each")
	seed         = flag.Uint64("seed", 0, "Random seed (0 seeds from the clock)")
	dataPath     = flag.String("data", "", "CSV training pairs: inputs then targets per line (XOR when empty)")
	plotPath     = flag.String("plot", "", "Write the loss curve to this image file")
	report       = flag.Int("report", 10000, "Epochs per loss report (0 disables)")
	verbose      = flag.Bool("verbose", true, "Verbose output")
)

func main() {
	flag.Parse()
	utils.Verbose = *verbose

	arch, err := utils.ParseTopology(*topology)
	if err != nil {
		log.Fatalf("parsing topology: %v", err)
	}
	config := utils.Config{
		Topology:     arch,
		LearningRate: *learningRate,
		Epochs:       *epochs,
		Seed:         *seed,
		DataPath:     *dataPath,
		PlotPath:     *plotPath,
		ReportEvery:  *report,
	}
	if config.Seed == 0 {
		config.Seed = uint64(time.Now().UnixNano())
	}
	if err := utils.ValidateConfig(&config); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if config.PlotPath != "" && config.ReportEvery == 0 {
		log.Fatalf("invalid configuration: --plot needs a positive --report interval")
	}

	utils.Logf("Configuration:")
	utils.Logf("  Topology:      %v", config.Topology)
	utils.Logf("  Learning Rate: %.4f", config.LearningRate)
	utils.Logf("  Epochs:        %d", config.Epochs)
	utils.Logf("  Seed:          %d", config.Seed)
	utils.Logf("  Data:          %s", dataName(config.DataPath))

	stats := &utils.TimingStats{}
	totalStart := time.Now()

	start := time.Now()
	lines, err := loadLines(config)
	if err != nil {
		log.Fatalf("loading training pairs: %v", err)
	}
	stats.DataLoadingTime = time.Since(start)
	utils.Logf("Read %d training pairs", len(lines))

	start = time.Now()
	net, err := m.NewNeuralNetwork(m.Config{
		Topology:     config.Topology,
		LearningRate: config.LearningRate,
		Src:          rand.NewSource(config.Seed),
	})
	if err != nil {
		log.Fatalf("building network: %v", err)
	}
	stats.ModelInitTime = time.Since(start)

	utils.Logf("[info] training started")
	losses, err := train(net, lines, config, stats)
	if err != nil {
		fmt.Fprintf(os.Stderr, "training network: %v\n", err)
		os.Exit(1)
	}
	utils.Logf("[info] training completed")

	start = time.Now()
	mse, err := net.Evaluate(lines)
	if err != nil {
		fmt.Fprintf(os.Stderr, "evaluating network: %v\n", err)
		os.Exit(1)
	}
	stats.EvaluationTime = time.Since(start)
	stats.TotalTime = time.Since(totalStart)
	utils.PrintTimingStats(stats, config.Epochs)

	fmt.Printf("\nMean squared error: %.6f\n", mse)
	for _, line := range lines {
		prediction, err := net.Predict(line.Inputs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "predicting %v: %v\n", line.Inputs, err)
			os.Exit(1)
		}
		fmt.Printf("%s -> %s\n", formatValues(line.Inputs, 'g', -1), formatValues(prediction, 'f', 4))
	}

	if config.PlotPath != "" {
		if err := utils.SaveLossPlot(config.PlotPath, losses, config.ReportEvery); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving: %v\n", err)
			os.Exit(1)
		}
		utils.Logf("Saved loss plot to %s", config.PlotPath)
	}
}

func loadLines(config utils.Config) (m.Lines, error) {
	if config.DataPath == "" {
		return m.XORLines(), nil
	}
	inputNum := config.Topology[0]
	outputNum := config.Topology[len(config.Topology)-1]
	return m.LoadLines(config.DataPath, inputNum, outputNum)
}

// train runs config.Epochs uniformly sampled steps and returns the mean loss
// of every report window.
func train(net *m.NeuralNetwork, lines m.Lines, config utils.Config, stats *utils.TimingStats) ([]float64, error) {
	if len(lines) == 0 {
		return nil, m.ErrNoLines
	}
	rng := rand.New(rand.NewSource(config.Seed + 1))

	var losses []float64
	var window float64
	for epoch := 1; epoch <= config.Epochs; epoch++ {
		ind := rng.Intn(len(lines))
		loss, err := trainStep(net, lines[ind], stats)
		if err != nil {
			return losses, fmt.Errorf("epoch %d, line %d: %w", epoch, ind, err)
		}
		window += loss

		if config.ReportEvery > 0 && epoch%config.ReportEvery == 0 {
			mean := window / float64(config.ReportEvery)
			losses = append(losses, mean)
			utils.Logf("Epoch %d/%d | Loss: %.6f", epoch, config.Epochs, mean)
			window = 0
		}
	}
	return losses, nil
}

func trainStep(net *m.NeuralNetwork, line m.Line, stats *utils.TimingStats) (float64, error) {
	start := time.Now()
	p, err := net.FeedForward(line.Inputs)
	stats.ForwardPassTime += time.Since(start)
	if err != nil {
		return 0, err
	}

	start = time.Now()
	err = net.BackPropagate(p, line.Targets)
	stats.BackwardPassTime += time.Since(start)
	if err != nil {
		return 0, err
	}
	return m.SquaredError(line.Targets, p.Prediction()), nil
}

func formatValues(vals []float64, fmtByte byte, prec int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, fmtByte, prec, 64)
	}
	return strings.Join(parts, ", ")
}

func dataName(path string) string {
	if path == "" {
		return "XOR"
	}
	return path
}
