package politician

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bornholm/civicadmin/internal/command/common"
	"github.com/bornholm/civicadmin/internal/core/listing"
	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/service"
	"github.com/bornholm/civicadmin/internal/importer"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const parentArg = "politician-id"

func parentID(ctx *cli.Context) (model.PoliticianID, error) {
	id, err := common.ID[model.PoliticianID](ctx, 0, parentArg)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return id, nil
}

func politicianScoped[T any, K ~string](scope func(m *service.PoliticianManager, id model.PoliticianID) *service.ResourceManager[T, K]) func(ctx *cli.Context) (*service.ResourceManager[T, K], error) {
	return func(ctx *cli.Context) (*service.ResourceManager[T, K], error) {
		id, err := parentID(ctx)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		manager, err := common.GetPoliticianManager(ctx)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		return scope(manager, id), nil
	}
}

var commitments = common.Resource[model.Commitment, model.CommitmentID]{
	Name:   "commitment",
	Parent: parentArg,
	Manager: politicianScoped(func(m *service.PoliticianManager, id model.PoliticianID) *service.ResourceManager[model.Commitment, model.CommitmentID] {
		return m.Commitments(id)
	}),
	SortKeys: listing.CommitmentSortKeys.Names(),
	Columns:  []string{"id", "title", "status", "progress", "deadline"},
	Row: func(c model.Commitment) []any {
		return []any{c.ID, common.Truncate(c.Title, 50), c.Status, fmt.Sprintf("%d%%", c.Progress), c.Deadline}
	},
	Details: func(c model.Commitment) []string {
		return []string{
			"ID", string(c.ID),
			"Title", c.Title,
			"Category", c.Category,
			"Status", string(c.Status),
			"Progress", fmt.Sprintf("%d%%", c.Progress),
			"Promised at", c.PromisedAt.String(),
			"Deadline", c.Deadline.String(),
			"Source", c.SourceURL,
			"Evidence", c.Evidence,
			"Description", common.Truncate(c.Description, 120),
		}
	},
	ID: func(c model.Commitment) model.CommitmentID { return c.ID },
	New: func(ctx *cli.Context) (model.Commitment, error) {
		return model.Commitment{Status: model.CommitmentStatusNotStarted}, nil
	},
}

var timeline = common.Resource[model.TimelineEvent, model.TimelineEventID]{
	Name:   "event",
	Parent: parentArg,
	Manager: politicianScoped(func(m *service.PoliticianManager, id model.PoliticianID) *service.ResourceManager[model.TimelineEvent, model.TimelineEventID] {
		return m.Timeline(id)
	}),
	SortKeys: listing.TimelineSortKeys.Names(),
	Columns:  []string{"id", "date", "type", "title"},
	Row: func(e model.TimelineEvent) []any {
		return []any{e.ID, e.Date, e.Type, common.Truncate(e.Title, 60)}
	},
	Details: func(e model.TimelineEvent) []string {
		return []string{
			"ID", string(e.ID),
			"Title", e.Title,
			"Type", string(e.Type),
			"Date", e.Date.String(),
			"Source", e.SourceURL,
			"Description", common.Truncate(e.Description, 120),
		}
	},
	ID: func(e model.TimelineEvent) model.TimelineEventID { return e.ID },
	New: func(ctx *cli.Context) (model.TimelineEvent, error) {
		return model.TimelineEvent{Type: model.TimelineEventTypeOther}, nil
	},
}

var votes = common.Resource[model.VotingRecord, model.VotingRecordID]{
	Name:   "vote",
	Parent: parentArg,
	Manager: politicianScoped(func(m *service.PoliticianManager, id model.PoliticianID) *service.ResourceManager[model.VotingRecord, model.VotingRecordID] {
		return m.Votes(id)
	}),
	SortKeys: listing.VotingRecordSortKeys.Names(),
	Columns:  []string{"id", "date", "bill", "number", "vote"},
	Row: func(v model.VotingRecord) []any {
		return []any{v.ID, v.Date, common.Truncate(v.BillName, 50), v.BillNumber, v.Vote}
	},
	Details: func(v model.VotingRecord) []string {
		return []string{
			"ID", string(v.ID),
			"Bill", v.BillName,
			"Number", v.BillNumber,
			"Vote", string(v.Vote),
			"Date", v.Date.String(),
			"Category", v.Category,
			"Source", v.SourceURL,
			"Summary", common.Truncate(v.Summary, 120),
		}
	},
	ID: func(v model.VotingRecord) model.VotingRecordID { return v.ID },
}

func CommitmentCommand() *cli.Command {
	return &cli.Command{
		Name:        "commitment",
		Aliases:     []string{"commitments"},
		Usage:       "Manage the commitments of a politician",
		Subcommands: commitments.Commands(),
	}
}

func TimelineCommand() *cli.Command {
	return &cli.Command{
		Name:        "timeline",
		Usage:       "Manage the timeline events of a politician",
		Subcommands: timeline.Commands(),
	}
}

func VoteCommand() *cli.Command {
	return &cli.Command{
		Name:        "vote",
		Aliases:     []string{"votes"},
		Usage:       "Manage the voting records of a politician",
		Subcommands: append(votes.Commands(), VoteImportCommand()),
	}
}

type importResult struct {
	Created []model.VotingRecord `json:"created" yaml:"created"`
	Errors  []string             `json:"errors" yaml:"errors"`
}

func VoteImportCommand() *cli.Command {
	flags := common.WithCommonFlags()

	return &cli.Command{
		Name:      "import",
		Usage:     fmt.Sprintf("Create voting records from a CSV or XLSX file (columns: %v)", importer.VotingRecordColumns),
		ArgsUsage: "<politician-id> <file>",
		Flags:     flags,
		Before:    common.Before(flags),
		Action: func(ctx *cli.Context) error {
			id, err := parentID(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			path, err := common.Arg(ctx, 1, "file")
			if err != nil {
				return errors.WithStack(err)
			}

			format, err := importer.FormatFromFilename(path)
			if err != nil {
				return errors.WithStack(err)
			}

			file, err := os.Open(path)
			if err != nil {
				return errors.WithStack(err)
			}

			defer file.Close()

			rows, err := importer.ReadVotingRecords(file, format, id)
			if err != nil {
				return errors.WithStack(err)
			}

			records, rowErrors := importer.Valid(rows)

			result := importResult{
				Errors: make([]string, 0, len(rowErrors)),
			}

			for _, e := range rowErrors {
				result.Errors = append(result.Errors, e.Error())
			}

			if len(records) > 0 {
				manager, err := common.GetPoliticianManager(ctx)
				if err != nil {
					return errors.WithStack(err)
				}

				created, err := manager.Votes(id).CreateMany(ctx.Context, records)
				if created != nil {
					result.Created = created.Created
					for _, f := range created.Failures {
						result.Errors = append(result.Errors, fmt.Sprintf("record %d: %s", f.Index+1, f.Err))
					}
				}
				if err != nil {
					return errors.WithStack(err)
				}
			}

			return common.Print(ctx, result, func(w io.Writer) error {
				fmt.Fprintf(w, "%d voting record(s) created, %d rejected.\n", len(result.Created), len(result.Errors))
				for _, e := range result.Errors {
					fmt.Fprintf(w, "  - %s\n", e)
				}
				return nil
			})
		},
	}
}

const (
	paramTitle = "title"
	paramType  = "type"
)

var documents = common.Resource[model.Document, model.DocumentID]{
	Name:   "document",
	Parent: parentArg,
	Manager: politicianScoped(func(m *service.PoliticianManager, id model.PoliticianID) *service.ResourceManager[model.Document, model.DocumentID] {
		return m.Documents(id).ResourceManager
	}),
	SortKeys: []string{"title", "type", "size"},
	Columns:  []string{"id", "title", "type", "file", "size", "uploaded"},
	Row: func(d model.Document) []any {
		uploaded := ""
		if !d.UploadedAt.IsZero() {
			uploaded = humanize.Time(d.UploadedAt)
		}
		return []any{d.ID, common.Truncate(d.Title, 40), d.Type, d.FileName, humanize.Bytes(uint64(d.Size)), uploaded}
	},
	Details: func(d model.Document) []string {
		return []string{
			"ID", string(d.ID),
			"Title", d.Title,
			"Type", string(d.Type),
			"File", d.FileName,
			"MIME type", d.MimeType,
			"Size", humanize.Bytes(uint64(d.Size)),
			"URL", d.URL,
		}
	},
	ID: func(d model.Document) model.DocumentID { return d.ID },
}

func DocumentUploadCommand() *cli.Command {
	flags := common.WithCommonFlags(
		&cli.StringFlag{
			Name:    paramTitle,
			Aliases: []string{"t"},
			Usage:   "Title of the document, defaults to the file name",
		},
		&cli.StringFlag{
			Name:  paramType,
			Value: string(model.DocumentTypeOther),
			Usage: fmt.Sprintf("Type of the document (available: %v)", model.DocumentTypes),
		},
	)

	return &cli.Command{
		Name:      "upload",
		Usage:     "Attach a file to a politician profile",
		ArgsUsage: "<politician-id> <file>",
		Flags:     flags,
		Before:    common.Before(flags),
		Action: func(ctx *cli.Context) error {
			id, err := parentID(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			path, err := common.Arg(ctx, 1, "file")
			if err != nil {
				return errors.WithStack(err)
			}

			file, err := os.Open(path)
			if err != nil {
				return errors.WithStack(err)
			}

			defer file.Close()

			manager, err := common.GetPoliticianManager(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			document, err := manager.Documents(id).Upload(ctx.Context, service.DocumentFile{
				Title:    ctx.String(paramTitle),
				Type:     model.DocumentType(ctx.String(paramType)),
				FileName: filepath.Base(path),
				Content:  file,
			})
			if err != nil {
				return errors.WithStack(err)
			}

			return common.Print(ctx, document, func(w io.Writer) error {
				return common.Fields(w, documents.Details(*document)...)
			})
		},
	}
}

func DocumentCommand() *cli.Command {
	return &cli.Command{
		Name:    "document",
		Aliases: []string{"documents", "doc"},
		Usage:   "Manage the documents attached to a politician",
		Subcommands: []*cli.Command{
			documents.ListCommand(),
			documents.ShowCommand(),
			DocumentUploadCommand(),
			documents.DeleteCommand(),
		},
	}
}
