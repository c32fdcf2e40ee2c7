package main

import (
	"github.com/kelmorin/bland-cli/pkg/bland"
	"github.com/spf13/cobra"
)

var (
	sampleVoice    string
	sampleLanguage string
	sampleSpeed    float64
	samplePitch    float64

	publishDescription string
	publishLanguage    string
	publishGender      string
	publishAudioFiles  []string
)

func init() {
	rootCmd.AddCommand(voiceCmd)
	voiceCmd.AddCommand(voiceListCmd)
	voiceCmd.AddCommand(voiceGetCmd)
	voiceCmd.AddCommand(voiceSampleCmd)
	voiceCmd.AddCommand(voicePublishCmd)

	voiceSampleCmd.Flags().StringVar(&sampleVoice, "voice", "", "Voice preset or cloned voice ID")
	voiceSampleCmd.Flags().StringVar(&sampleLanguage, "language", "", "Language tag, e.g. en-US")
	voiceSampleCmd.Flags().Float64Var(&sampleSpeed, "speed", 0, "Playback speed between 0.5 and 2.0")
	voiceSampleCmd.Flags().Float64Var(&samplePitch, "pitch", 0, "Pitch shift between -20 and 20")

	voicePublishCmd.Flags().StringVar(&publishDescription, "description", "", "Voice description")
	voicePublishCmd.Flags().StringVar(&publishLanguage, "language", "", "Language tag")
	voicePublishCmd.Flags().StringVar(&publishGender, "gender", "", "Voice gender label")
	voicePublishCmd.Flags().StringArrayVar(&publishAudioFiles, "audio", nil, "Training audio URL, repeatable")
	voicePublishCmd.MarkFlagRequired("description")
	voicePublishCmd.MarkFlagRequired("audio")
}

var voiceCmd = &cobra.Command{
	Use:   "voice",
	Short: "Browse, sample, and publish voices",
}

var voiceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available voices",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		resp, err := getClient().ListVoices(cmd.Context())
		if err != nil {
			fail(out, err)
		}
		if !finish(out, &resp.APIResponse) {
			return nil
		}
		if len(resp.Voices) == 0 {
			out.Println("No voices available")
			return nil
		}

		rows := make([][]string, 0, len(resp.Voices))
		for _, v := range resp.Voices {
			visibility := "private"
			if v.Public {
				visibility = "public"
			}
			rows = append(rows, []string{v.VoiceID, v.Name, v.Language, visibility})
		}
		return out.Table([]string{"VOICE ID", "NAME", "LANGUAGE", "VISIBILITY"}, rows)
	},
}

var voiceGetCmd = &cobra.Command{
	Use:   "get <voice-id>",
	Short: "Show one voice's metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		resp, err := getClient().GetVoiceDetails(cmd.Context(), args[0])
		if err != nil {
			fail(out, err)
		}
		if !finish(out, &resp.APIResponse) {
			return nil
		}
		out.Field("voice_id", resp.VoiceID)
		out.Field("name", resp.Name)
		if resp.Description != "" {
			out.Field("description", resp.Description)
		}
		out.Field("language", resp.Language)
		return nil
	},
}

var voiceSampleCmd = &cobra.Command{
	Use:   "sample <text>",
	Short: "Generate an audio sample of a voice speaking text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		resp, err := getClient().GenerateAudioSample(cmd.Context(), bland.GenerateAudioParams{
			Text:     args[0],
			VoiceID:  sampleVoice,
			Language: sampleLanguage,
			Speed:    sampleSpeed,
			Pitch:    samplePitch,
		})
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Println(resp.AudioURL)
		}
		return nil
	},
}

var voicePublishCmd = &cobra.Command{
	Use:   "publish <name>",
	Short: "Publish a cloned voice from training audio",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := getOutputPrinter()

		resp, err := getClient().PublishClonedVoice(cmd.Context(), bland.PublishVoiceParams{
			Name:        args[0],
			Description: publishDescription,
			AudioFiles:  publishAudioFiles,
			Language:    publishLanguage,
			Gender:      publishGender,
		})
		if err != nil {
			fail(out, err)
		}
		if finish(out, &resp.APIResponse) {
			out.Successf("Voice published\n")
			out.Field("voice_id", resp.VoiceID)
		}
		return nil
	},
}
