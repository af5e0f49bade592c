// Package analysis groups the diagnostics of a run by rule and by file.
package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yaklabco/humorlint/pkg/runner"
)

// makeRelativePath converts an absolute path to a relative path from workDir.
// Paths outside workDir, or any failure, keep the original path.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil || strings.HasPrefix(relPath, "..") {
		return absPath
	}
	return relPath
}

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	ruleMap   map[string]*RuleAnalysis
	fileMap   map[string]*FileAnalysis
	ruleFiles map[string]map[string]bool
	fileRules map[string]map[string]bool
}

func newAnalysisContext() *analysisContext {
	return &analysisContext{
		ruleMap:   make(map[string]*RuleAnalysis),
		fileMap:   make(map[string]*FileAnalysis),
		ruleFiles: make(map[string]map[string]bool),
		fileRules: make(map[string]map[string]bool),
	}
}

func (ctx *analysisContext) file(path string) *FileAnalysis {
	if _, ok := ctx.fileMap[path]; !ok {
		ctx.fileMap[path] = &FileAnalysis{Path: path}
		ctx.fileRules[path] = make(map[string]bool)
	}
	return ctx.fileMap[path]
}

func (ctx *analysisContext) rule(ruleID, ruleName string) *RuleAnalysis {
	if _, ok := ctx.ruleMap[ruleID]; !ok {
		ctx.ruleMap[ruleID] = &RuleAnalysis{
			RuleID:   ruleID,
			RuleName: ruleName,
		}
		ctx.ruleFiles[ruleID] = make(map[string]bool)
	}
	return ctx.ruleMap[ruleID]
}

func (ctx *analysisContext) buildByRule(opts Options) []RuleAnalysis {
	result := make([]RuleAnalysis, 0, len(ctx.ruleMap))
	for ruleID, ra := range ctx.ruleMap {
		for f := range ctx.ruleFiles[ruleID] {
			ra.Files = append(ra.Files, f)
		}
		slices.Sort(ra.Files)
		result = append(result, *ra)
	}
	sortRuleAnalysis(result, opts)
	return result
}

func (ctx *analysisContext) buildByFile(opts Options) []FileAnalysis {
	result := make([]FileAnalysis, 0, len(ctx.fileMap))
	for path, fa := range ctx.fileMap {
		for r := range ctx.fileRules[path] {
			fa.Rules = append(fa.Rules, r)
		}
		slices.Sort(fa.Rules)
		result = append(result, *fa)
	}
	sortFileAnalysis(result, opts.SortBy)
	return result
}

// Analyze transforms a runner.Result into a Report in a single pass over
// its diagnostics.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{}
	if result == nil {
		return report
	}

	ctx := newAnalysisContext()

	for _, file := range result.Files {
		if file.Error != nil {
			report.Totals.FilesErrored++
			continue
		}
		if file.Result == nil || file.Result.Result == nil {
			continue
		}
		report.Totals.Files++
		if len(file.Result.Diagnostics) == 0 {
			continue
		}
		report.Totals.FilesWithIssues++

		displayPath := makeRelativePath(file.Path, opts.WorkingDir)
		fa := ctx.file(displayPath)

		for _, diag := range file.Result.Diagnostics {
			report.Totals.Issues++
			fa.Issues++
			ctx.fileRules[displayPath][diag.RuleID] = true

			ra := ctx.rule(diag.RuleID, diag.RuleName)
			ra.Issues++
			ctx.ruleFiles[diag.RuleID][displayPath] = true
		}
	}

	report.ByRule = ctx.buildByRule(opts)
	report.ByFile = ctx.buildByFile(opts)

	return report
}

func sortRuleAnalysis(rules []RuleAnalysis, opts Options) {
	position := func(id string) int {
		if idx := slices.Index(opts.RuleOrder, id); idx >= 0 {
			return idx
		}
		return len(opts.RuleOrder)
	}

	slices.SortFunc(rules, func(left, right RuleAnalysis) int {
		switch opts.SortBy {
		case SortByAlpha:
			return cmp.Compare(left.RuleID, right.RuleID)
		case SortByOrder:
			return cmp.Or(
				cmp.Compare(position(left.RuleID), position(right.RuleID)),
				cmp.Compare(left.RuleID, right.RuleID),
			)
		default:
			return cmp.Or(
				cmp.Compare(right.Issues, left.Issues),
				cmp.Compare(left.RuleID, right.RuleID),
			)
		}
	})
}

func sortFileAnalysis(files []FileAnalysis, sortBy SortField) {
	slices.SortFunc(files, func(left, right FileAnalysis) int {
		if sortBy == SortByAlpha {
			return cmp.Compare(left.Path, right.Path)
		}
		return cmp.Or(
			cmp.Compare(right.Issues, left.Issues),
			cmp.Compare(left.Path, right.Path),
		)
	})
}
