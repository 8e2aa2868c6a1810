package contacts

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soley/admin-cli/internal/app"
	"github.com/soley/admin-cli/internal/format"
	"github.com/soley/admin-cli/internal/forms"
	"github.com/soley/admin-cli/internal/models"
	"github.com/soley/admin-cli/internal/section"
)

// ContactsCmd represents the contacts command
var ContactsCmd = &cobra.Command{
	Use:     "contacts",
	Aliases: []string{"contact", "inbox"},
	Short:   "Customer message commands",
	Long: fmt.Sprintf(`Read, answer and triage messages sent through the contact form.

Statuses: %s.`, strings.Join(models.ContactStatuses, ", ")),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return app.From(cmd).RequireLogin()
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List messages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.List(cmd, filtered(cmd).Section)
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := app.From(cmd).Client.GetContact(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return format.Print(c)
	},
}

var replyCmd = &cobra.Command{
	Use:   "reply <id>",
	Short: "Reply to a message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		msg, _ := cmd.Flags().GetString("message")
		s := sectionFor(cmd)
		defer s.Close()
		return s.Reply(cmd.Context(), args[0], forms.ContactReplyForm{ReplyMessage: msg})
	},
}

var statusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Change the status of a message",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, _ := cmd.Flags().GetString("notes")
		s := sectionFor(cmd)
		defer s.Close()
		return s.SetStatus(cmd.Context(), args[0], forms.ContactStatusForm{Status: args[1], Notes: notes})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a message",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := sectionFor(cmd)
		defer s.Close()
		return s.Delete(cmd.Context(), args[0])
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show inbox statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := app.From(cmd).Client.ContactStats(cmd.Context())
		if err != nil {
			return err
		}
		return format.Print(st)
	},
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse messages interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Browse(cmd, filtered(cmd).Section)
	},
}

func sectionFor(cmd *cobra.Command) *section.ContactSection {
	return section.Contacts(app.From(cmd).Deps(), "")
}

func filtered(cmd *cobra.Command) *section.ContactSection {
	status, _ := cmd.Flags().GetString("status")
	return section.Contacts(app.From(cmd).Deps(), status)
}

func init() {
	app.AddListFlags(listCmd)
	listCmd.Flags().String("status", "", "only messages with this status")
	browseCmd.Flags().String("status", "", "only messages with this status")

	replyCmd.Flags().StringP("message", "m", "", "reply text")
	replyCmd.MarkFlagRequired("message")
	statusCmd.Flags().String("notes", "", "internal notes")

	ContactsCmd.AddCommand(listCmd)
	ContactsCmd.AddCommand(getCmd)
	ContactsCmd.AddCommand(replyCmd)
	ContactsCmd.AddCommand(statusCmd)
	ContactsCmd.AddCommand(deleteCmd)
	ContactsCmd.AddCommand(statsCmd)
	ContactsCmd.AddCommand(browseCmd)
}
