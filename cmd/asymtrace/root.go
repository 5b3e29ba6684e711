package main

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// SubCommand pairs a command with the viper instance its flags are bound to.
type SubCommand struct {
	Cmd  *cobra.Command
	Conf *viper.Viper

	EnvPrefix string
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "asymtrace",
	Short: "Trace asymptotic paths on triangle meshes",
	Long: `
asymtrace follows the directions of zero normal curvature across a triangle
mesh, starting from seed vertices, and writes the traced polylines as GeoJSON.
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	goflag.Parse()
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var rootConf = viper.New()

func init() {
	initTrace()

	RootCmd.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden to values set with environment variables and flags.")
	rootConf.BindPFlags(RootCmd.PersistentFlags())

	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)

	var subcommands = []*SubCommand{&Trace}
	for _, sc := range subcommands {
		RootCmd.AddCommand(sc.Cmd)
		sc.Conf = viper.New()
		sc.Conf.BindPFlags(sc.Cmd.Flags())
		sc.Conf.BindPFlags(RootCmd.PersistentFlags())
		sc.Conf.AutomaticEnv()
		sc.Conf.SetEnvPrefix(sc.EnvPrefix)
	}
	cobra.OnInitialize(func() {
		cfg := rootConf.GetString("config")
		if cfg == "" {
			return
		}
		for _, sc := range subcommands {
			sc.Conf.SetConfigFile(cfg)
			if err := sc.Conf.ReadInConfig(); err != nil {
				fmt.Println(errors.Wrapf(err, "reading config"))
				os.Exit(1)
			}
		}
	})
}
