package handlers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/tabulon-ext/molecule/internal/platform/sshagent"
	"github.com/tabulon-ext/molecule/internal/ui"
	"github.com/tabulon-ext/molecule/internal/util/prerequisites"
)

// CheckReport is the machine-readable result of the check command.
type CheckReport struct {
	Driver        string      `json:"driver"`
	SanityChecked bool        `json:"sanityChecked"`
	Checks        []CheckItem `json:"checks"`
}

// CheckItem is a single environment check outcome.
type CheckItem struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Fatal  bool   `json:"fatal"`
	Detail string `json:"detail,omitempty"`
}

// Check handles the check command: driver sanity checks plus the wider
// environment report. Fatal failures are returned to main for exit; warning
// findings only affect the report.
func Check(ctx context.Context, configPath string, jsonOutput bool) error {
	cfg, st, err := loadScenario(configPath)
	if err != nil {
		return err
	}

	drv, err := newDriver(cfg, st)
	if err != nil {
		return err
	}

	report := &CheckReport{Driver: drv.Name()}

	sanityErr := drv.SanityChecks(ctx)
	report.SanityChecked = st.SanityChecked()
	apiItem := CheckItem{Name: "hetzner cloud API", OK: sanityErr == nil, Fatal: true}
	if sanityErr != nil {
		apiItem.Detail = sanityErr.Error()
	}
	report.Checks = append(report.Checks, apiItem)

	tools := prerequisites.Check(prerequisites.LoginTools())
	for _, r := range tools.Results {
		item := CheckItem{Name: r.Tool.Name, OK: r.Found, Fatal: r.Tool.Required, Detail: r.Version}
		if !r.Found {
			item.Detail = r.Tool.InstallURL
		}
		report.Checks = append(report.Checks, item)
	}

	keyCount, agentErr := sshagent.Probe()
	agentItem := CheckItem{Name: "ssh-agent", OK: agentErr == nil && keyCount > 0}
	switch {
	case agentErr != nil:
		agentItem.Detail = agentErr.Error()
	case keyCount == 0:
		agentItem.Detail = "agent reachable but no keys loaded"
	default:
		agentItem.Detail = fmt.Sprintf("%d keys loaded", keyCount)
	}
	if !agentItem.OK {
		log.Warn("login requires a pre-registered key in your ssh-agent", "detail", agentItem.Detail)
	}
	report.Checks = append(report.Checks, agentItem)

	if jsonOutput {
		if err := printCheckJSON(report); err != nil {
			return err
		}
	} else {
		printCheckFormatted(report)
	}

	if sanityErr != nil {
		return sanityErr
	}
	return tools.Err()
}

func printCheckJSON(report *CheckReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal check report: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printCheckFormatted(report *CheckReport) {
	fmt.Println()
	fmt.Print(ui.Header(fmt.Sprintf("sanity checks: %s", report.Driver)))
	for _, item := range report.Checks {
		if !item.Fatal && !item.OK {
			fmt.Print(ui.WarnRow(item.Name, item.Detail))
			continue
		}
		fmt.Print(ui.Row(item.OK, item.Name, item.Detail))
	}
	fmt.Println()
}
