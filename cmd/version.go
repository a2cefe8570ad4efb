package cmd

import (
	"fmt"

	appVersion "github.com/ionut-t/wordy/internal/version"
	"github.com/ionut-t/wordy/ui/styles"
)

var version = appVersion.Get().Version

const logo = `
__      _____  _ __ __| |_   _
\ \ /\ / / _ \| '__/ _' | | | |
 \ V  V / (_) | | | (_| | |_| |
  \_/\_/ \___/|_|  \__,_|\__, |
                         |___/
`

func versionTemplate() string {
	info := appVersion.Get()

	versionTpl := styles.Classic().PrimaryStyle().Margin(0, 2).Render(logo) + `
  Version        %s
  Commit         %s
  Release date   %s
`
	return fmt.Sprintf(versionTpl, info.Version, info.Commit, info.Date)
}
