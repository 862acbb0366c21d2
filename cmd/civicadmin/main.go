package main

import (
	"github.com/bornholm/civicadmin/internal/command"
	"github.com/bornholm/civicadmin/internal/command/auth"
	"github.com/bornholm/civicadmin/internal/command/learning"
	"github.com/bornholm/civicadmin/internal/command/politician"
	"github.com/bornholm/civicadmin/internal/command/report"
	"github.com/bornholm/civicadmin/internal/command/search"
	"github.com/bornholm/civicadmin/internal/command/snapshot"
	"github.com/bornholm/civicadmin/internal/command/update"
)

func main() {
	command.Main(
		"civicadmin", "administration tool of the civic platform",
		auth.LoginCommand(),
		auth.LogoutCommand(),
		auth.WhoamiCommand(),
		auth.ProfileCommand(),
		politician.Command(),
		politician.CommitmentCommand(),
		politician.TimelineCommand(),
		politician.VoteCommand(),
		politician.DocumentCommand(),
		learning.ModuleCommand(),
		learning.LessonCommand(),
		learning.QuizCommand(),
		learning.QuestionCommand(),
		learning.ChallengeCommand(),
		report.Command(),
		search.Command(),
		snapshot.Command(),
		update.Command(),
	)
}
