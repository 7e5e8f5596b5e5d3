package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"bridgeout/pkg/models"
)

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Ask the advisory team about your plan",
	Long: "Ask a follow-up question about the current plan. With no argument, " +
		"starts an interactive session; type 'q' to leave.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, p, profile, err := loadState(cmd)
		if err != nil {
			return err
		}

		var history []models.ChatMessage
		ask := func(message string) error {
			fmt.Println()
			answer, err := application.AI.Chat(cmd.Context(), p, profile, history, message, func(chunk string) {
				fmt.Print(chunk)
			})
			if err != nil {
				return err
			}
			fmt.Println()
			history = append(history,
				models.ChatMessage{Role: "user", Content: message},
				models.ChatMessage{Role: "model", Content: answer},
			)
			return nil
		}

		if len(args) == 1 {
			return ask(args[0])
		}

		fmt.Println(titleStyle.Render("Advisory Chat — " + profile.TargetRole))
		fmt.Println("Ask about your plan. 'q' to quit.")
		reader := bufio.NewReader(os.Stdin)
		for {
			fmt.Print("\n> ")
			input, err := reader.ReadString('\n')
			if err != nil {
				return nil
			}
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			if input == "q" || input == "Q" {
				return nil
			}
			if err := ask(input); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				application.Logger.Sugar().Errorw("chat turn failed", "error", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
