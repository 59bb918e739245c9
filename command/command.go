package command

import (
	"context"
	"fmt"
	"io"

	"github.com/mr-joshcrane/glayer"
	"github.com/spf13/cobra"
)

type CommandOptions func(*cobra.Command) error

var NewClient = func(ctx context.Context) (glayer.LambdaClient, error) {
	return glayer.NewLambdaClient(ctx)
}

func WithOutput(w io.Writer) CommandOptions {
	return func(cmd *cobra.Command) error {
		cmd.SetOutput(w)
		return nil
	}
}

func Main(args []string, opts ...CommandOptions) error {
	var rootCmd = &cobra.Command{
		Use:   "glayer",
		Short: "Run and check a Lambda function that uses shared layer code.",
	}
	commands := []*cobra.Command{
		LocalCommand(),
		InvokeCommand(),
		ValidateCommand(),
	}
	for _, opt := range opts {
		err := opt(rootCmd)
		if err != nil {
			return err
		}
	}
	rootCmd.AddCommand(commands...)
	if len(args) == 0 {
		rootCmd.Print(rootCmd.UsageString())
		return fmt.Errorf("no command provided")
	}
	rootCmd.SetArgs(args)
	_, _, err := rootCmd.Find(args)
	if err != nil {
		rootCmd.Print(rootCmd.UsageString())
		return err
	}
	rootCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Run: func(cmd *cobra.Command, args []string) {}})
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	return rootCmd.Execute()
}

func LocalCommand() *cobra.Command {
	var localCmd = &cobra.Command{
		Use:          "local [payload]",
		Short:        "Run the function handler in-process.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		Example:      `glayer local '{"key":"value"}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := glayer.LoadConfig()
			if err != nil {
				return err
			}
			logger, err := glayer.NewLogger(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer logger.Sync()
			h := glayer.NewHandler(
				glayer.WithLogger(logger),
				glayer.WithStdout(cmd.OutOrStdout()),
			)
			out, err := glayer.InvokeLocal(cmd.Context(), h, payloadArg(args))
			if err != nil {
				return err
			}
			cmd.Println(string(out))
			return nil
		},
	}
	return localCmd
}

func InvokeCommand() *cobra.Command {
	var invokeCmd = &cobra.Command{
		Use:          "invoke functionName [payload]",
		Short:        "Invoke a deployed lambda function and check its result.",
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		Example:      `glayer invoke myFunctionName '{}' --qualifier live`,
		RunE: func(cmd *cobra.Command, args []string) error {
			functionName := args[0]
			qualifier, _ := cmd.Flags().GetString("qualifier")
			verify, _ := cmd.Flags().GetBool("verify")
			cfg, err := glayer.LoadConfig()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.InvokeTimeout)
			defer cancel()
			client, err := NewClient(ctx)
			if err != nil {
				return err
			}
			result, err := glayer.Invoke(ctx, client, functionName, qualifier, payloadArg(args[1:]))
			if err != nil {
				return err
			}
			cmd.Println(result.Logs)
			cmd.Println(string(result.Payload))
			if !verify {
				return nil
			}
			err = result.Verify()
			if err != nil {
				return err
			}
			cmd.Println("Verified successfully!")
			return nil
		},
	}
	invokeCmd.Flags().String("qualifier", "", "Version or alias of the lambda function to invoke.")
	invokeCmd.Flags().Bool("verify", true, "Check the payload and logs of the invocation.")
	return invokeCmd
}

func ValidateCommand() *cobra.Command {
	var validateCmd = &cobra.Command{
		Use:          "validate sourceCodePath",
		Short:        "Check that a Go source file is a valid lambda entry point.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		Example:      `glayer validate ./cmd/function/main.go`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := glayer.Validate(args[0])
			if err != nil {
				return err
			}
			cmd.Printf("%s is a valid lambda entry point\n", args[0])
			return nil
		},
	}
	return validateCmd
}

func payloadArg(args []string) []byte {
	if len(args) == 0 {
		return []byte("{}")
	}
	return []byte(args[0])
}
