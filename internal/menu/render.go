package menu

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mrlokans/librarian/internal/entities"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func writeBooks(w io.Writer, books []entities.Book) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tName\tSubject\tQuantity")
	for _, b := range books {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", b.ID, b.Name, b.Subject, b.Quantity)
	}
	return tw.Flush()
}

func writeLoans(w io.Writer, issued []entities.Loan) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tName\tSubject\tStudent\tClass\tDate Issued")
	for _, l := range issued {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			l.BookID, l.Name, l.Subject, l.StudentName, l.StudentClass,
			l.IssueDate.Format(entities.IssueDateLayout))
	}
	return tw.Flush()
}
