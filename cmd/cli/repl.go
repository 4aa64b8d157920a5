// ABOUTME: Interactive shell loop for the OpenWiki terminal client
// ABOUTME: Dispatches commands to the account, collection, search and download services

package main

import (
	"bufio"
	"context"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"openwiki-client/core/account"
	"openwiki-client/core/collection"
	"openwiki-client/core/content"
	"openwiki-client/core/domain"
	"openwiki-client/core/download"
	"openwiki-client/core/session"
	"openwiki-client/core/wikipedia"
	"openwiki-client/pkg/config"
	"openwiki-client/pkg/utils/htmltext"
	"openwiki-client/pkg/utils/table"
)

type shellServices struct {
	sessions     *session.Service
	guard        *session.Guard
	accounts     *account.Service
	articles     *collection.Service
	encyclopedia *wikipedia.Service
	downloads    *download.Service
}

type shell struct {
	svc     shellServices
	cfg     *config.Config
	scanner *bufio.Scanner
	out     io.Writer
}

func newShell(svc shellServices, cfg *config.Config, in io.Reader, out io.Writer) *shell {
	s := &shell{
		svc:     svc,
		cfg:     cfg,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
	svc.downloads.OnUpdate(s.printDownloadUpdate)
	return s
}

func (s *shell) run() {
	for {
		fmt.Fprint(s.out, "openwiki> ")
		if !s.scanner.Scan() {
			break
		}
		line := strings.TrimSpace(s.scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		ctx := context.Background()
		switch args[0] {
		case "help":
			s.printHelp()
		case "register":
			s.register(ctx)
		case "login":
			s.login(ctx)
		case "logout":
			s.logout(ctx)
		case "whoami":
			s.whoami()
		case "search":
			s.search(ctx, strings.Join(args[1:], " "))
		case "preview":
			s.preview(ctx, strings.Join(args[1:], " "))
		case "download":
			s.download(ctx, strings.Join(args[1:], " "))
		case "articles":
			s.listArticles(ctx, strings.Join(args[1:], " "))
		case "expand":
			s.expand(strings.Join(args[1:], " "))
		case "delete":
			s.delete(ctx, strings.Join(args[1:], " "))
		case "edit":
			s.edit(ctx, strings.Join(args[1:], " "))
		case "history":
			s.history(ctx, strings.Join(args[1:], " "))
		case "random":
			s.random(ctx)
		case "profile":
			s.profile(ctx)
		case "passwd":
			s.passwd(ctx)
		case "delete-account":
			s.deleteAccount(ctx)
		case "exit":
			fmt.Fprintln(s.out, "Bye")
			return
		default:
			fmt.Fprintln(s.out, "Unknown command. Type 'help' for a list of commands.")
		}
	}
}

func (s *shell) printHelp() {
	fmt.Fprintln(s.out, "Account:    register, login, logout, whoami, profile, passwd, delete-account")
	fmt.Fprintln(s.out, "Search:     search <query>, preview <title>, download <title>")
	fmt.Fprintln(s.out, "Collection: articles <term>, expand <title>, delete <title>, edit <title>,")
	fmt.Fprintln(s.out, "            history <title>, random")
	fmt.Fprintln(s.out, "Other:      help, exit")
}

func (s *shell) prompt(label string) string {
	fmt.Fprint(s.out, label)
	if !s.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(s.scanner.Text())
}

func (s *shell) confirm(label string) bool {
	answer := strings.ToLower(s.prompt(label + " (y/n): "))
	return answer == "y" || answer == "yes"
}

// requireLogin reports whether a session exists, printing a hint if not.
func (s *shell) requireLogin() bool {
	if err := s.svc.guard.Require(); err != nil {
		fmt.Fprintln(s.out, "You need to login first.")
		return false
	}
	return true
}

func (s *shell) fail(err error) {
	fmt.Fprintf(s.out, "Error: %v\n", err)
}

func (s *shell) register(ctx context.Context) {
	username := s.prompt("Username: ")
	email := s.prompt("Email: ")
	password := s.prompt("Password: ")
	confirm := s.prompt("Confirm password: ")

	if err := s.svc.accounts.Register(ctx, username, email, password, confirm); err != nil {
		s.fail(err)
		return
	}
	fmt.Fprintln(s.out, "Registered. You can now login.")
}

func (s *shell) login(ctx context.Context) {
	email := s.prompt("Email: ")
	password := s.prompt("Password: ")

	user, err := s.svc.accounts.Login(ctx, email, password)
	if err != nil {
		s.fail(err)
		return
	}
	fmt.Fprintf(s.out, "Welcome, %s\n", user.Username)
}

func (s *shell) logout(ctx context.Context) {
	if err := s.svc.accounts.Logout(ctx); err != nil {
		s.fail(err)
		return
	}
	fmt.Fprintln(s.out, "Signed out.")
}

func (s *shell) whoami() {
	current := s.svc.sessions.Current()
	if !current.Authenticated() {
		fmt.Fprintln(s.out, "Not signed in.")
		return
	}
	fmt.Fprintf(s.out, "%s <%s>\n", current.User.Username, current.User.Email)
}

func (s *shell) search(ctx context.Context, query string) {
	results, err := s.svc.encyclopedia.Search(ctx, query, s.cfg.Wikipedia.Language)
	if err != nil {
		s.fail(err)
		return
	}
	if len(results) == 0 {
		fmt.Fprintln(s.out, "No results.")
		return
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.PageID, r.Title})
	}
	fmt.Fprint(s.out, table.Format([]string{"PAGE", "TITLE"}, rows))
}

func (s *shell) preview(ctx context.Context, title string) {
	page, err := s.svc.encyclopedia.Preview(ctx, title, s.cfg.Wikipedia.Language)
	if err != nil {
		s.fail(err)
		return
	}
	fmt.Fprintf(s.out, "%s\n\n%s\n", page.Title, page.Extract)
}

func (s *shell) printDownloadUpdate(task domain.DownloadTask) {
	switch task.Phase {
	case domain.PhaseDownloading:
		fmt.Fprintf(s.out, "\rDownloading %q... %3d%%", task.Title, task.Percent)
	case domain.PhaseSucceeded:
		fmt.Fprintf(s.out, "\rDownloading %q... %3d%%\n", task.Title, task.Percent)
	case domain.PhaseFailed:
		fmt.Fprintf(s.out, "\n%s\n", task.Message)
	}
}

func (s *shell) download(ctx context.Context, title string) {
	if !s.requireLogin() {
		return
	}
	if err := s.svc.downloads.Download(ctx, title, s.cfg.Wikipedia.Language); err != nil {
		s.fail(err)
		return
	}

	task := s.svc.downloads.Task()
	if task != nil && task.Phase == domain.PhaseConfirmingOverwrite {
		if !s.confirm(fmt.Sprintf("%q is already in your collection. Overwrite?", title)) {
			s.svc.downloads.Cancel()
			fmt.Fprintln(s.out, "Download cancelled.")
			return
		}
		if err := s.svc.downloads.ConfirmOverwrite(ctx); err != nil {
			s.fail(err)
			return
		}
	}
	fmt.Fprintf(s.out, "Saved %q to your collection.\n", title)
}

func (s *shell) listArticles(ctx context.Context, term string) {
	if !s.requireLogin() {
		return
	}
	if term == "" {
		fmt.Fprintln(s.out, "Usage: articles <term>")
		return
	}
	if err := s.svc.articles.Load(ctx, term); err != nil {
		s.fail(err)
		return
	}

	titles := s.svc.articles.Titles()
	if len(titles) == 0 {
		fmt.Fprintln(s.out, "No saved articles match.")
		return
	}
	rows := make([][]string, 0, len(titles))
	for _, title := range titles {
		group, _ := s.svc.articles.Group(title)
		rows = append(rows, []string{title, strconv.Itoa(len(group))})
	}
	fmt.Fprint(s.out, table.Format([]string{"TITLE", "COPIES"}, rows))
}

// representative returns the first article of a loaded group.
func (s *shell) representative(title string) (domain.Article, bool) {
	group, ok := s.svc.articles.Group(title)
	if !ok {
		fmt.Fprintf(s.out, "No loaded article titled %q. Run 'articles <term>' first.\n", title)
		return domain.Article{}, false
	}
	return group[0], true
}

func (s *shell) expand(title string) {
	if !s.requireLogin() {
		return
	}
	article, ok := s.representative(title)
	if !ok {
		return
	}

	s.svc.articles.ToggleExpand(title)
	if s.svc.articles.Expanded() != title {
		fmt.Fprintf(s.out, "Collapsed %q.\n", title)
		return
	}

	text, err := htmltext.Render(article.Content)
	if err != nil {
		s.fail(err)
		return
	}
	fmt.Fprintf(s.out, "%s\n\n%s\n", article.Title, text)
}

func (s *shell) delete(ctx context.Context, title string) {
	if !s.requireLogin() {
		return
	}
	article, ok := s.representative(title)
	if !ok {
		return
	}
	if !s.confirm(fmt.Sprintf("Delete %q from your collection?", title)) {
		return
	}
	if err := s.svc.articles.Delete(ctx, article.ID, article.Title); err != nil {
		s.fail(err)
		return
	}
	fmt.Fprintln(s.out, "Article deleted.")
}

func (s *shell) edit(ctx context.Context, title string) {
	if !s.requireLogin() {
		return
	}
	article, ok := s.representative(title)
	if !ok {
		return
	}

	draft, err := s.svc.articles.BeginEdit(article)
	if err != nil {
		s.fail(err)
		return
	}

	s.printDraft(draft)
	fmt.Fprintln(s.out, "Editing. Commands: show, set <n> <text>, commit, cancel")
	for {
		line := s.prompt("edit> ")
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "show":
			s.printDraft(draft)
		case "set":
			if len(args) < 3 {
				fmt.Fprintln(s.out, "Usage: set <n> <text>")
				continue
			}
			s.setDraftBlock(draft, args[1], strings.Join(args[2:], " "))
		case "commit":
			if err := s.svc.articles.CommitEdit(ctx); err != nil {
				s.fail(err)
				continue
			}
			fmt.Fprintln(s.out, "Article updated.")
			return
		case "cancel":
			s.svc.articles.CancelEdit()
			fmt.Fprintln(s.out, "Edit discarded.")
			return
		default:
			fmt.Fprintln(s.out, "Commands: show, set <n> <text>, commit, cancel")
		}
	}
}

func (s *shell) printDraft(draft *collection.Draft) {
	for i, block := range draft.Doc.Blocks {
		switch block.Type {
		case content.BlockHeading, content.BlockParagraph:
			fmt.Fprintf(s.out, "%2d [%s] %s\n", i, block.Type, block.Text)
		case content.BlockList:
			fmt.Fprintf(s.out, "%2d [%s] %s\n", i, block.Type, strings.Join(block.Items, "; "))
		case content.BlockImage:
			fmt.Fprintf(s.out, "%2d [%s] %s\n", i, block.Type, block.Src)
		case content.BlockTable:
			fmt.Fprintf(s.out, "%2d [%s] %d rows\n", i, block.Type, len(block.Rows))
		}
	}
}

func (s *shell) setDraftBlock(draft *collection.Draft, index, text string) {
	i, err := strconv.Atoi(index)
	if err != nil || i < 0 || i >= len(draft.Doc.Blocks) {
		fmt.Fprintln(s.out, "No such block.")
		return
	}
	block := &draft.Doc.Blocks[i]
	switch block.Type {
	case content.BlockHeading, content.BlockParagraph:
		block.Text = html.EscapeString(text)
		fmt.Fprintln(s.out, "Block updated.")
	default:
		fmt.Fprintln(s.out, "Only headings and paragraphs can be edited here.")
	}
}

func (s *shell) history(ctx context.Context, title string) {
	if !s.requireLogin() {
		return
	}
	article, ok := s.representative(title)
	if !ok {
		return
	}

	history, err := s.svc.articles.FetchHistory(ctx, article.ID)
	if err != nil {
		s.fail(err)
		return
	}
	if len(history) == 0 {
		fmt.Fprintln(s.out, "No history recorded.")
		return
	}
	rows := make([][]string, 0, len(history))
	for _, version := range history {
		rows = append(rows, []string{version.CreatedAt, version.AuthorID, version.Title})
	}
	fmt.Fprint(s.out, table.Format([]string{"DATE", "AUTHOR", "TITLE"}, rows))
}

func (s *shell) random(ctx context.Context) {
	if !s.requireLogin() {
		return
	}
	article, message, err := s.svc.articles.ArticleOfTheDay(ctx)
	if err != nil {
		s.fail(err)
		return
	}
	if article == nil {
		fmt.Fprintln(s.out, message)
		return
	}

	text, err := htmltext.Render(article.Content)
	if err != nil {
		s.fail(err)
		return
	}
	fmt.Fprintf(s.out, "Article of the day: %s\n\n%s\n", article.Title, text)
}

func (s *shell) profile(ctx context.Context) {
	if !s.requireLogin() {
		return
	}
	current := s.svc.sessions.Current()
	username := s.prompt(fmt.Sprintf("Username [%s]: ", current.User.Username))
	if username == "" {
		username = current.User.Username
	}
	email := s.prompt(fmt.Sprintf("Email [%s]: ", current.User.Email))
	if email == "" {
		email = current.User.Email
	}

	user, err := s.svc.accounts.UpdateProfile(ctx, username, email)
	if err != nil {
		s.fail(err)
		return
	}
	fmt.Fprintf(s.out, "Profile updated: %s <%s>\n", user.Username, user.Email)
}

func (s *shell) passwd(ctx context.Context) {
	if !s.requireLogin() {
		return
	}
	oldPassword := s.prompt("Current password: ")
	newPassword := s.prompt("New password: ")
	confirm := s.prompt("Confirm new password: ")

	if err := s.svc.accounts.ChangePassword(ctx, oldPassword, newPassword, confirm); err != nil {
		s.fail(err)
		return
	}
	fmt.Fprintln(s.out, "Password changed.")
}

func (s *shell) deleteAccount(ctx context.Context) {
	if !s.requireLogin() {
		return
	}
	if !s.confirm("Delete your account and all saved articles? This cannot be undone.") {
		return
	}
	if err := s.svc.accounts.DeleteAccount(ctx); err != nil {
		s.fail(err)
		return
	}
	fmt.Fprintln(s.out, "Account deleted.")
}
