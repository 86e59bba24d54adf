package main

import (
	"context"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/theapemachine/qsim"
)

// VERSION is populated via build flags when packaging official binaries.
var VERSION = "SELFBUILD"

func main() {
	myApp := cli.NewApp()
	myApp.Name = "bv"
	myApp.Usage = "recover a hidden bitstring with one Bernstein–Vazirani query"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "secret, s",
			Value: "",
			Usage: "hidden bitstring made of 0 and 1",
		},
		cli.IntFlag{
			Name:  "random, r",
			Value: 0,
			Usage: "generate a random secret of this length instead of --secret",
		},
		cli.IntFlag{
			Name:  "shots",
			Value: 1024,
			Usage: "number of measurement shots",
		},
		cli.Uint64Flag{
			Name:  "seed",
			Usage: "random seed, a fresh one is drawn when unset",
		},
		cli.IntFlag{
			Name:  "workers",
			Value: runtime.NumCPU(),
			Usage: "sampling workers",
		},
		cli.IntFlag{
			Name:  "batch",
			Value: 1024,
			Usage: "shots per sampling job",
		},
		cli.IntFlag{
			Name:  "maxqubits",
			Value: 26,
			Usage: "largest register the simulator may allocate",
		},
		cli.IntFlag{
			Name:  "top",
			Value: 16,
			Usage: "outcomes listed in the report, 0 lists all",
		},
		cli.BoolFlag{
			Name:  "qasm",
			Usage: "print the circuit as OpenQASM 2.0",
		},
		cli.StringFlag{
			Name:  "log",
			Value: "",
			Usage: "specify a log file to output, default goes to stderr",
		},
		cli.StringFlag{
			Name:  "c",
			Value: "",
			Usage: "config from json/yaml/toml file, which will override the command from shell",
		},
	}
	myApp.Action = func(c *cli.Context) error {
		config := Config{}
		config.Secret = c.String("secret")
		config.Random = c.Int("random")
		config.Shots = c.Int("shots")
		config.Seed = c.Uint64("seed")
		config.SeedSet = c.IsSet("seed")
		config.Workers = c.Int("workers")
		config.Batch = c.Int("batch")
		config.MaxQubits = c.Int("maxqubits")
		config.Top = c.Int("top")
		config.QASM = c.Bool("qasm")
		config.Log = c.String("log")

		checkError(loadConfig(&config, c.String("c")))

		if config.Log != "" {
			f, err := os.OpenFile(config.Log, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
			checkError(err)
			defer f.Close()
			log.SetOutput(f)
		}

		if !config.SeedSet {
			config.Seed = rand.Uint64()
		}

		secret, err := chooseSecret(&config)
		checkError(err)

		settings := runSettings(&config)
		checkError(settings.Validate())
		governor := qsim.NewResourceGovernor(settings.MaxQubits, settings.MaxStateBytes)
		checkError(governor.Admit(len(secret) + 1))

		circuit, err := qsim.NewBernsteinVazirani(secret)
		checkError(err)
		renderInfo(os.Stdout, secret, circuit.Info())
		if config.QASM {
			os.Stdout.WriteString(circuit.QASM() + "\n")
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		log.Printf("running secret=%s shots=%d seed=%d workers=%d", secret, config.Shots, config.Seed, config.Workers)
		result, err := qsim.RunAlgorithm(ctx, secret, config.Shots, qsim.WithConfig(settings))
		checkError(err)

		renderReport(os.Stdout, result.Report, config.Top)
		return nil
	}
	myApp.Run(os.Args)
}

/*
chooseSecret returns the configured secret, or a random one of the
configured length. The random secret is drawn from the run seed so a run can
be reproduced from its seed alone.
*/
func chooseSecret(config *Config) (string, error) {
	if config.Random > 0 {
		if config.Secret != "" {
			return "", errors.Wrap(qsim.ErrInvalidInput, "use either --secret or --random, not both")
		}
		return randomSecret(rand.New(rand.NewPCG(config.Seed, 0)), config.Random), nil
	}
	if config.Random < 0 {
		return "", errors.Wrapf(qsim.ErrInvalidInput, "random length must be positive, got %d", config.Random)
	}

	if err := qsim.ValidateSecret(config.Secret); err != nil {
		return "", err
	}
	return config.Secret, nil
}

func randomSecret(rng *rand.Rand, n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte('0' + byte(rng.IntN(2)))
	}
	return b.String()
}

func checkError(err error) {
	if err != nil {
		color.Red("%+v", err)
		os.Exit(-1)
	}
}
