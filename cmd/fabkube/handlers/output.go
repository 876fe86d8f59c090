package handlers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/fabkube/internal/agent"
	"github.com/imamik/fabkube/internal/config"
)

var (
	colorGreen = lipgloss.Color("#22c55e")
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	readyStyle = lipgloss.NewStyle().
			Foreground(colorGreen)
)

// renderNodeResult produces the summary printed after a node is created.
func renderNodeResult(result *agent.Result, ready bool) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("  %s %s created", result.Type, result.Deployment.Name)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n")

	fmt.Fprintf(&b, "    Namespace:  %s\n", result.Namespace)
	if containers := result.Deployment.Spec.Template.Spec.Containers; len(containers) > 0 {
		fmt.Fprintf(&b, "    Image:      %s\n", containers[0].Image)
	}
	if ready {
		b.WriteString("    Status:     ")
		b.WriteString(readyStyle.Render("ready"))
		b.WriteString("\n")
	}

	ports := result.NodePorts()
	if len(ports) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("  Node Ports"))
		b.WriteString("\n")

		names := make([]string, 0, len(ports))
		for name := range ports {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "    %-10s %d\n", name, ports[name])
		}
	}

	b.WriteString("\n")
	return b.String()
}

// renderInitSummary produces the summary printed after the init wizard.
func renderInitSummary(outputPath string, cfg *config.Config) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  Configuration saved"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "    File:       %s\n", outputPath)
	fmt.Fprintf(&b, "    Namespace:  %s\n", cfg.Namespace)
	fmt.Fprintf(&b, "    Layout:     %s\n", cfg.Layout)

	if cfg.SharedStorage.Enabled() {
		fmt.Fprintf(&b, "    Storage:    glusterfs %s on %s (%s)\n",
			cfg.SharedStorage.Volume, strings.Join(cfg.SharedStorage.Hosts, ", "), cfg.SharedStorage.Capacity)
	} else {
		b.WriteString("    Storage:    ")
		b.WriteString(dimStyle.Render("none"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("  Next Steps"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "    fabkube -c %s namespace ensure\n", outputPath)
	fmt.Fprintf(&b, "    fabkube -c %s node create -t ca --id <id> --name ca0 --org <org> --version 1.5\n", outputPath)
	b.WriteString("\n")

	return b.String()
}
