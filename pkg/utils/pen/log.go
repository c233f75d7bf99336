package pen

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/log"
)

func InitLog() {
	styles := log.DefaultStyles()
	log.SetFormatter(log.TextFormatter)
	log.SetStyles(styles)
	log.SetLevel(log.InfoLevel)
}

// Loader starts a spinner with the given prefix and returns it so the
// caller can stop it with Complete once the slow step is done.
func Loader(prefix string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
	s.Prefix = prefix
	s.FinalMSG = ""
	s.Start()
	return s
}

func Complete(s *spinner.Spinner, msg string) {
	s.Stop()
	log.Info(msg)
}
