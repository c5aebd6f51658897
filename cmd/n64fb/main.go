// Command n64fb runs the n64gfx boot scene on the host: it brings up the
// debug channel, draws into a framebuffer, programs the video interface
// and shows what the display would scan out.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          filepath.Base(os.Args[0]),
	Short:        "n64fb renders the N64 boot scene on the host",
	Long:         "n64fb renders the N64 boot scene on the host",
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

var (
	debugFlag   bool
	tvFlag      string
	consoleFlag string
	widthFlag   uint16
	heightFlag  uint16
	messageFlag string
	scaleFlag   int
)

func init() {
	cobra.EnablePrefixMatching = true
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&debugFlag, `debug`, `d`, false, `debug logging and error stacks`)
	pf.StringVar(&tvFlag, `tv`, `ntsc`, `video standard: pal, ntsc or mpal`)
	pf.StringVar(&consoleFlag, `console`, `n64`, `console variant: n64 or ique`)
	pf.Uint16Var(&widthFlag, `width`, 320, `framebuffer width`)
	pf.Uint16Var(&heightFlag, `height`, 240, `framebuffer height`)
	pf.StringVar(&messageFlag, `message`, `Hello N64`, `text drawn and sent to the debug channel`)
	pf.IntVarP(&scaleFlag, `scale`, `s`, 2, `integer display scale`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// run executes fn, reporting failures and aborts the same way. Allocation
// failures panic with a stack-carrying error.
func run(fn func() error) {
	exitCode := 0
	defer func() {
		if r := recover(); r != nil {
			exitCode = 1
			report(r)
		}
		os.Exit(exitCode)
	}()
	if err := fn(); err != nil {
		exitCode = 1
		report(err)
	}
}

func report(v any) {
	if stackFramer, ok := v.(interface{ ErrorStack() string }); debugFlag && ok {
		fmt.Fprintln(os.Stderr, stackFramer.ErrorStack())
		return
	}
	fmt.Fprintln(os.Stderr, `n64fb:`, v)
}
