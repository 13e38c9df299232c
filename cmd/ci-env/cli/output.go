package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/davarch/ci-env/internal/application"
	"github.com/davarch/ci-env/internal/domain"
	"github.com/davarch/ci-env/internal/infrastructure/envsource"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var outputFormats = []string{"table", "json", "yaml", "env"}

func render(w io.Writer, f domain.Facts, format string) error {
	switch format {
	case "", "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "FACT\tVALUE")
		for _, row := range rows(f) {
			v := row.value
			if v == "" {
				v = "-"
			}
			_, _ = fmt.Fprintf(tw, "%s\t%s\n", row.name, v)
		}
		return tw.Flush()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(f)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(f); err != nil {
			_ = enc.Close()
			return err
		}
		return enc.Close()
	case "env":
		vars := map[string]string{}
		add := func(k, v string) {
			if v != "" {
				vars[k] = v
			}
		}
		add(application.EnvBranch, f.Branch)
		add(application.EnvPullRequest, f.PullRequest)
		add(application.EnvRepoSlug, f.Repo)
		add(application.EnvParallelNonce, f.ParallelNonce)
		if f.ParallelTotal > 0 {
			add(application.EnvParallelTotal, strconv.Itoa(f.ParallelTotal))
		}
		s, err := envsource.Marshal(vars)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)
		return err
	}
	return errors.Errorf("unknown output format %q", format)
}

type row struct {
	name  string
	value string
}

// rows lists facts by their get names, in display order.
func rows(f domain.Facts) []row {
	total := ""
	if f.ParallelTotal > 0 {
		total = strconv.Itoa(f.ParallelTotal)
	}
	return []row{
		{"ci", string(f.CI)},
		{"branch", f.Branch},
		{"pull-request", f.PullRequest},
		{"repo", f.Repo},
		{"parallel-nonce", f.ParallelNonce},
		{"parallel-total", total},
	}
}
