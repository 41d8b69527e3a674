package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/arch/arm/armasm"

	"github.com/wnxd/microunwind/dwarf/regnum"
	"github.com/wnxd/microunwind/unwinder"
	"github.com/wnxd/microunwind/unwinder/arm"
)

func main() {
	root := &cobra.Command{
		Use:   "unwinddump",
		Short: "Inspect ARM unwind contexts",
	}
	root.AddCommand(selfCmd(), imageCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func selfCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self",
		Short: "Capture and print the live register context",
		RunE: func(cmd *cobra.Command, args []string) error {
			if runtime.GOARCH != "arm" {
				return fmt.Errorf("%w: live capture requires an arm build", unwinder.ErrArchUnsupported)
			}
			printContext(cmd, arm.Capture())
			return nil
		},
	}
}

func imageCmd() *cobra.Command {
	var disas string
	var textBase uint64
	cmd := &cobra.Command{
		Use:   "image <file>",
		Short: "Print the register context held in a sigcontext image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			ctx, err := arm.FromSignalContext(data)
			if err != nil {
				return err
			}
			printContext(cmd, ctx)
			if disas == "" {
				return nil
			}
			text, err := os.ReadFile(disas)
			if err != nil {
				return err
			}
			pc := uint64(ctx.Reg(regnum.ARM_PC))
			if pc < textBase || pc-textBase >= uint64(len(text)) {
				return fmt.Errorf("pc %#x outside text image", pc)
			}
			inst, err := armasm.Decode(text[pc-textBase:], armasm.ModeARM)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%08x  %v\n", pc, inst)
			return nil
		},
	}
	cmd.Flags().StringVar(&disas, "disas", "", "text segment image used to decode the instruction at pc")
	cmd.Flags().Uint64Var(&textBase, "text-base", 0, "load address of the text segment image")
	return cmd
}

func printContext(cmd *cobra.Command, ctx unwinder.Context) {
	for _, reg := range ctx.Registers() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-4s %08x\n", reg.Name, reg.Value)
	}
}
