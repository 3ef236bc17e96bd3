package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/boaziz1447-maker/omar-alessa/internal/share"
	"github.com/spf13/cobra"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Encode and decode lesson share links",
}

var shareEncodeCmd = &cobra.Command{
	Use:   "encode <payload.json>",
	Short: "Build a share link from a lesson payload JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, _ := cmd.Flags().GetString("base")

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read payload: %w", err)
		}

		var payload share.Payload
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("parse payload: %w", err)
		}

		link, err := share.LessonURL(base, payload)
		if err != nil {
			return fmt.Errorf("encode link: %w", err)
		}
		fmt.Println(link)
		return nil
	},
}

var shareDecodeCmd = &cobra.Command{
	Use:   "decode <link>",
	Short: "Decode a share or config link and print its payload as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		shareTok, configTok := share.ParseURL(args[0])
		if shareTok == "" && configTok == "" {
			return fmt.Errorf("no share or config parameter in link")
		}

		out := json.NewEncoder(os.Stdout)
		out.SetIndent("", "  ")

		if shareTok != "" {
			payload, err := share.Decode(shareTok)
			if err != nil {
				return fmt.Errorf("decode share payload: %w", err)
			}
			if err := out.Encode(payload); err != nil {
				return err
			}
		}

		if configTok != "" {
			cfg, err := share.DecodeConfig(configTok)
			if err != nil {
				return fmt.Errorf("decode config payload: %w", err)
			}
			if err := out.Encode(cfg); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	shareEncodeCmd.Flags().String("base", "https://alessa.app/", "Base URL for the generated link")

	shareCmd.AddCommand(shareEncodeCmd)
	shareCmd.AddCommand(shareDecodeCmd)
}
