package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"ffnet/m"

	"golang.org/x/exp/rand"
)

var flagEpochs = flag.Int("epochs", 100000, "number of training steps")

// Trains a 2-3-1 network on XOR and prints its four predictions.
func main() {
	flag.Parse()
	src := rand.NewSource(uint64(time.Now().UTC().UnixNano()))

	network, err := m.NewNeuralNetwork(m.Config{
		Topology:     []int{2, 3, 1},
		LearningRate: 0.1,
		Src:          src,
	})
	if err != nil {
		fmt.Printf("building network: %s\n", err.Error())
		os.Exit(1)
	}

	lines := m.XORLines()
	fmt.Println("[info] training started")
	if err := network.Train(lines, *flagEpochs, src); err != nil {
		fmt.Printf("training network: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Println("[info] training completed")

	for _, line := range lines {
		prediction, err := network.Predict(line.Inputs)
		if err != nil {
			fmt.Printf("predicting %v: %s\n", line.Inputs, err.Error())
			os.Exit(1)
		}
		fmt.Printf("%g, %g -> %.4f\n", line.Inputs[0], line.Inputs[1], prediction[0])
	}
}
