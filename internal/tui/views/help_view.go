package views

import (
	"fmt"
	"strings"

	"github.com/ohadaerp/erp/internal/tui/ui"
	"github.com/rivo/tview"
)

// HelpView displays the key binding reference.
type HelpView struct {
	*tview.TextView
	theme *ui.Theme
}

// NewHelpView creates a new help view listing kinds as ":<kind>" commands.
func NewHelpView(theme *ui.Theme, kinds []string) *HelpView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" Aide ")
	tv.SetTitleColor(theme.TitleColor)

	hv := &HelpView{
		TextView: tv,
		theme:    theme,
	}
	hv.render(kinds)
	return hv
}

// Name implements ui.Component.
func (hv *HelpView) Name() string { return "Aide" }

func (hv *HelpView) render(kinds []string) {
	kc := ui.Tag(hv.theme.MenuKeyColor)
	key := func(k string) string { return fmt.Sprintf("[%s]%-8s[-:-:-]", kc, tview.Escape(k)) }

	var b strings.Builder
	section := func(title string, rows [][2]string) {
		fmt.Fprintf(&b, "\n  [::b]%s[-:-:-]\n\n", title)
		for _, r := range rows {
			fmt.Fprintf(&b, "  %s %s\n", key(r[0]), r[1])
		}
	}

	section("Touches globales", [][2]string{
		{":", "Mode commande"},
		{"Esc", "Retour / annuler"},
		{"?", "Aide"},
		{"Ctrl-C", "Quitter"},
	})
	section("Accueil", [][2]string{
		{"Enter", "Ouvrir la vue"},
		{"1-9", "Ouvrir la Nième vue"},
	})
	section("Liste", [][2]string{
		{"/", "Rechercher (texte, sans tenir compte de la casse)"},
		{"f", "Filtrer sur la valeur suivante"},
		{"F", "Changer de champ filtré"},
		{"0", "Effacer recherche et filtres"},
		{"Space", "Déplier / replier la ligne"},
		{"Enter", "Afficher le détail"},
		{"d", "Supprimer (avec confirmation)"},
	})
	section("Commandes", [][2]string{
		{":q", "Quitter"},
		{":help", "Cette aide"},
		{":home", "Retour à l'accueil"},
	})
	fmt.Fprintf(&b, "\n  Vues : %s\n", tview.Escape(":"+strings.Join(kinds, "  :")))

	_, _ = fmt.Fprint(hv, b.String())
}
