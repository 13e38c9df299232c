package domain

type CI string

const (
	Travis    CI = "travis"
	Jenkins   CI = "jenkins"
	Circle    CI = "circle"
	Codeship  CI = "codeship"
	Drone     CI = "drone"
	Semaphore CI = "semaphore"
	None      CI = ""
)

// Facts is one resolution of every fact. Optional facts are left zero when absent.
type Facts struct {
	CI            CI     `json:"ci,omitempty" yaml:"ci,omitempty"`
	Branch        string `json:"branch" yaml:"branch"`
	PullRequest   string `json:"pull_request,omitempty" yaml:"pull_request,omitempty"`
	Repo          string `json:"repo,omitempty" yaml:"repo,omitempty"`
	ParallelNonce string `json:"parallel_nonce,omitempty" yaml:"parallel_nonce,omitempty"`
	ParallelTotal int    `json:"parallel_total,omitempty" yaml:"parallel_total,omitempty"`
}
