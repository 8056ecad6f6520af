package services

import (
	"fmt"
	"sort"
	"strings"

	"deal-formatter/models"
	"deal-formatter/utils"
)

// ReportService computes and prints a summary of a completed batch, so the
// fallback path stays visible without turning failures into output columns.
type ReportService struct {
	logger *utils.Logger
}

func NewReportService(logger *utils.Logger) *ReportService {
	return &ReportService{logger: logger}
}

// Generate tallies generated vs fallback rows and buckets failure reasons.
func (s *ReportService) Generate(results []models.GenerationResult) *models.RunReport {
	report := &models.RunReport{
		FailureReasons: make(map[string]int),
	}

	report.TotalRows = len(results)
	for _, r := range results {
		if r.Err == "" {
			report.Generated++
		} else {
			report.Fallbacks++
			report.FailureReasons[reasonCategory(r.Err)]++
		}
		if len(r.Title) > len(report.LongestTitle) {
			report.LongestTitle = r.Title
		}
	}

	return report
}

// Print renders the report to stdout.
func (s *ReportService) Print(r *models.RunReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📋 DEAL FORMATTING SUMMARY\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Rows processed   : \033[1m%d\033[0m\n", r.TotalRows)
	fmt.Printf("  Generated        : \033[1;32m%d\033[0m\n", r.Generated)
	fmt.Printf("  Fallbacks        : \033[1;31m%d\033[0m\n", r.Fallbacks)
	fmt.Println()

	if r.LongestTitle != "" {
		fmt.Printf("\033[1;33m  Longest Title\033[0m\n")
		fmt.Printf("  %s\n", thin)
		fmt.Printf("  %s\n\n", truncate(r.LongestTitle, 50))
	}

	fmt.Printf("\033[1;33m  Failure Reasons\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.FailureReasons) == 0 {
		fmt.Printf("  No failures\n")
	} else {
		type reasonCount struct {
			reason string
			count  int
		}
		var reasons []reasonCount
		for reason, cnt := range r.FailureReasons {
			reasons = append(reasons, reasonCount{reason, cnt})
		}
		sort.Slice(reasons, func(i, j int) bool {
			return reasons[i].count > reasons[j].count
		})
		for _, rc := range reasons {
			bar := strings.Repeat("█", rc.count)
			fmt.Printf("  %-30s %s (%d)\n", truncate(rc.reason, 28), bar, rc.count)
		}
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

// reasonCategory strips the error detail after the first colon, so transient
// messages collapse into stable buckets like "generation request failed".
func reasonCategory(reason string) string {
	if idx := strings.Index(reason, ":"); idx > 0 {
		return reason[:idx]
	}
	return reason
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
