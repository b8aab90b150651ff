// kwreport analyzes a resume file offline and writes the result as an Excel
// workbook, or as JSON on stdout when --out is empty.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/keywords"
	"github.com/anatolykoptev/go_ats/internal/report"
	"github.com/anatolykoptev/go_ats/internal/toolutil"
)

func main() {
	_ = godotenv.Load()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	resume     string
	jd         string
	out        string
	dictionary string
	top        int
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := pflag.NewFlagSet("kwreport", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&o.resume, "resume", "r", "", "Resume file: JSON document, or plain text for any other extension (required)")
	fs.StringVarP(&o.jd, "jd", "j", "", "Job description file, text or HTML")
	fs.StringVarP(&o.out, "out", "o", "", "Output .xlsx path; empty prints JSON to stdout")
	fs.StringVarP(&o.dictionary, "dictionary", "d", os.Getenv("DICTIONARY_PATH"), "Keyword dictionary YAML; empty uses the built-in one")
	fs.IntVarP(&o.top, "top", "n", 0, "Number of top keywords (default 10)")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.resume == "" {
		return o, fmt.Errorf("--resume is required")
	}
	return o, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "kwreport: %v\n", err)
		return 1
	}

	rep, err := buildReport(o)
	if err != nil {
		fmt.Fprintf(stderr, "kwreport: %v\n", err)
		return 1
	}

	if o.out == "" {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep.Analysis); err != nil {
			fmt.Fprintf(stderr, "kwreport: %v\n", err)
			return 1
		}
		return 0
	}

	path, err := report.Save(o.out, rep)
	if err != nil {
		fmt.Fprintf(stderr, "kwreport: %v\n", err)
		return 1
	}
	slog.Info("report written", slog.String("path", path))
	return 0
}

func buildReport(o options) (report.Report, error) {
	data, err := os.ReadFile(o.resume)
	if err != nil {
		return report.Report{}, fmt.Errorf("read resume: %w", err)
	}
	var corpus string
	if strings.EqualFold(filepath.Ext(o.resume), ".json") {
		corpus, err = toolutil.ResumeCorpus(string(data), "")
	} else {
		corpus, err = toolutil.ResumeCorpus("", string(data))
	}
	if err != nil {
		return report.Report{}, err
	}

	var jd string
	if o.jd != "" {
		raw, err := os.ReadFile(o.jd)
		if err != nil {
			return report.Report{}, fmt.Errorf("read job description: %w", err)
		}
		jd = engine.NormalizeJobDescription(string(raw))
	}

	dict := keywords.DefaultDictionary()
	if o.dictionary != "" {
		if dict, err = keywords.LoadDictionaryFile(o.dictionary); err != nil {
			return report.Report{}, err
		}
	}
	p := keywords.DefaultPolicy()
	if o.top > 0 {
		p.TopKeywords = o.top
	}
	a := keywords.NewAnalyzer(dict, p)

	res := a.Analyze(corpus, jd)
	densities := make([]keywords.DensityResult, 0, len(res.TopKeywords))
	for _, kc := range res.TopKeywords {
		densities = append(densities, a.Density(corpus, kc.Keyword))
	}

	return report.Report{
		Title:     "Keyword Report: " + filepath.Base(o.resume),
		Generated: time.Now(),
		Analysis:  res,
		Densities: densities,
	}, nil
}
