package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/haven/internal/cli/formatter"
	"github.com/alexanderramin/haven/internal/domain"
	"github.com/alexanderramin/haven/internal/emergency"
	"github.com/spf13/cobra"
)

func newEmergencyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emergency",
		Short: "First response for injuries and emergencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body := formatter.Bullets(emergency.Types()) + "\n" +
				formatter.Dim("使用 'haven emergency procedure <类型>' 查看处理程序。")
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("紧急情况类型", body))
			return nil
		},
	}

	cmd.AddCommand(
		newEmergencyIdentifyCmd(),
		newEmergencyAssessCmd(),
		newEmergencyGuideCmd(),
		newEmergencyProcedureCmd(app),
		newEmergencyContactsCmd(),
		newEmergencyPlanCmd(),
	)
	return cmd
}

func newEmergencyIdentifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identify <description>",
		Short: "Guess the emergency type from a description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, ok := emergency.Identify(strings.Join(args, " "))
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatIdentification(id, ok))
			if ok {
				fmt.Fprintln(out, formatter.FormatQuickGuide(id.Type, emergency.GuideFor(id.Type)))
			}
			return nil
		},
	}
}

func newEmergencyAssessCmd() *cobra.Command {
	var (
		heartRate, breathingRate int
		temperature              float64
	)

	cmd := &cobra.Command{
		Use:     "assess <symptom>...",
		Short:   "Score symptoms and vital signs",
		Example: `  haven emergency assess 大量出血 呼吸困难 --heart-rate 130`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only vitals the user actually measured take part.
			var vitals *domain.VitalSigns
			flags := cmd.Flags()
			if flags.Changed("heart-rate") || flags.Changed("breathing-rate") || flags.Changed("temperature") {
				vitals = &domain.VitalSigns{}
				if flags.Changed("heart-rate") {
					vitals.HeartRate = &heartRate
				}
				if flags.Changed("breathing-rate") {
					vitals.BreathingRate = &breathingRate
				}
				if flags.Changed("temperature") {
					vitals.Temperature = &temperature
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAssessment(emergency.Assess(args, vitals)))
			return nil
		},
	}
	cmd.Flags().IntVar(&heartRate, "heart-rate", 0, "Heart rate (beats per minute)")
	cmd.Flags().IntVar(&breathingRate, "breathing-rate", 0, "Breathing rate (breaths per minute)")
	cmd.Flags().Float64Var(&temperature, "temperature", 0, "Body temperature (°C)")
	return cmd
}

func newEmergencyGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide <type>",
		Short: "Quick reference card for an emergency type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatQuickGuide(args[0], emergency.GuideFor(args[0])))
			return nil
		},
	}
}

func newEmergencyProcedureCmd(app *App) *cobra.Command {
	var info string

	cmd := &cobra.Command{
		Use:     "procedure <type>",
		Short:   "Full first-response procedure",
		Example: `  haven emergency procedure 骨折 --info "老人，独自在野外"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatResponse(app.Emergency.Respond(cmd.Context(), args[0], info)))
			return nil
		},
	}
	cmd.Flags().StringVar(&info, "info", "", "Who is affected and where, e.g. 儿童, 孕妇, 野外")
	return cmd
}

func newEmergencyContactsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contacts",
		Short: "Emergency phone numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatContacts(emergency.Contacts()))
			return nil
		},
	}
}

func newEmergencyPlanCmd() *cobra.Command {
	var (
		location  string
		groupSize int
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Emergency preparation checklist for a place and group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(emergency.Plan(location, groupSize)))
			return nil
		},
	}
	cmd.Flags().StringVar(&location, "location", emergency.LocationWilderness, "Kind of place, e.g. 野外, 家庭, 城市")
	cmd.Flags().IntVar(&groupSize, "group", 1, "Number of people")
	return cmd
}
