package server

import (
	"strconv"
	"strings"

	"github.com/stonewall-sec/auditscope/pkg/catalog"
	"github.com/stonewall-sec/auditscope/pkg/view"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" // Using . import for convenience with html tags
)

// CatalogPage renders the whole audits page for a state snapshot.
func CatalogPage(snap view.Snapshot) g.Node {
	var content g.Node
	switch snap.Status {
	case view.StatusLoading:
		content = g.Group([]g.Node{loadingState(), auditGrid(snap.Records)})
	case view.StatusEmpty:
		content = emptyState()
	default:
		content = auditGrid(snap.Records)
	}

	var viewer g.Node
	if snap.Selected != nil {
		viewer = detailViewer(*snap.Selected)
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Head(
				Meta(Charset("UTF-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text("Public Audits")),
				StyleEl(g.Raw(pageCSS)),
			),
			Body(
				Section(ID("audits"), Class("section"),
					Div(Class("section-header"),
						P(Class("section-label"), g.Text("Our Work")),
						H2(Class("section-title"), g.Text("Public Audits")),
						P(Class("section-subtitle"), g.Text("Browse our completed security reviews. Full reports available for download.")),
					),
					content,
				),
				viewer,
			),
		),
	})
}

func loadingState() g.Node {
	return Div(Class("loading"), Div(Class("loading-spinner")), Span(g.Text("Looking for new reports...")))
}

func emptyState() g.Node {
	return Div(Class("card empty"),
		H3(g.Text("Audits Coming Soon")),
		P(g.Text("Our security reviews will be published here. Add PDF files to the "),
			Code(g.Text("audits/")), g.Text(" folder of the repository.")),
	)
}

func auditGrid(recs []catalog.AuditRecord) g.Node {
	cards := make([]g.Node, 0, len(recs))
	for i, r := range recs {
		cards = append(cards, auditCard(i, r))
	}
	return Div(Class("audit-grid"), g.Group(cards))
}

func auditCard(index int, r catalog.AuditRecord) g.Node {
	return Div(Class("audit-card"),
		Div(Class("card-head"),
			g.If(r.SizeLabel != "", Span(Class("size"), g.Text(r.SizeLabel))),
		),
		H3(Class("audit-name"), g.Text(r.Name)),
		g.If(r.Chain != nil, chainBadge(r.Chain)),
		g.If(r.Client != "" || r.Date != "",
			Div(Class("meta"),
				g.If(r.Client != "", Span(Class("client"), g.Text(r.Client))),
				g.If(r.Date != "", Span(Class("date"), g.Text(r.Date))),
			),
		),
		g.If(r.Findings != nil, findingsRow(r.Findings)),
		g.If(r.Description != "", P(Class("description"), g.Text(r.Description))),
		Div(Class("actions"),
			Form(Method("post"), Action("/select"),
				Input(Type("hidden"), Name("index"), Value(strconv.Itoa(index))),
				Button(Type("submit"), Class("preview"), g.Text("Preview")),
			),
			A(Href(r.DocumentURL), Target("_blank"), Rel("noopener noreferrer"), g.Text("View")),
			A(Href(r.DocumentURL), g.Attr("download"), g.Text("Download")),
		),
	)
}

func chainBadge(c *catalog.Chain) g.Node {
	if c == nil {
		return nil
	}
	return Span(Class("chain chain-"+strings.ToLower(c.Icon)),
		Style("color: "+c.Color+"; border-color: "+c.Color),
		g.Text(c.Name),
	)
}

func findingsRow(f *catalog.Findings) g.Node {
	if f == nil {
		return nil
	}
	badges := f.Badges()
	nodes := make([]g.Node, 0, len(badges))
	for _, b := range badges {
		nodes = append(nodes, Span(Class("severity severity-"+strings.ToLower(b.Severity)),
			g.Textf("%d %s", b.Count, b.Severity)))
	}
	return Div(Class("findings"), g.Group(nodes))
}

func detailViewer(r catalog.AuditRecord) g.Node {
	return Div(ID("viewer"), Class("modal"),
		Div(Class("card modal-body"),
			Div(Class("modal-head"),
				H3(g.Text(r.Name)),
				g.If(r.Client != "", Span(Class("client"), g.Text(r.Client))),
				g.If(r.Chain != nil, chainBadge(r.Chain)),
				A(Href(r.DocumentURL), Target("_blank"), Rel("noopener noreferrer"), Class("btn"), g.Text("Open in New Tab")),
				Form(Method("post"), Action("/dismiss"),
					Button(Type("submit"), Class("close"), g.Text("Close")),
				),
			),
			g.El("iframe", Src(r.DocumentURL+"#view=FitH"), g.Attr("title", r.Name), Class("viewer-frame")),
		),
	)
}

const pageCSS = `
body { background: #0A0A0B; color: #9CA3AF; font-family: ui-sans-serif, system-ui, sans-serif; margin: 0; }
.section { max-width: 72rem; margin: 0 auto; padding: 4rem 1.5rem; }
.section-title { color: #fff; }
.audit-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(20rem, 1fr)); gap: 1.5rem; }
.audit-card, .card { border: 1px solid rgba(212,175,55,0.15); border-radius: 0.75rem; padding: 1.5rem; background: #111; }
.audit-name { color: #fff; }
.client { color: #D4AF37; margin-right: 1rem; }
.chain { border: 1px solid; border-radius: 9999px; padding: 0.1rem 0.6rem; font-size: 0.75rem; }
.severity { border-radius: 9999px; padding: 0.1rem 0.6rem; font-size: 0.75rem; margin-right: 0.25rem; }
.severity-critical { background: #7f1d1d; color: #fecaca; }
.severity-high { background: #7c2d12; color: #fed7aa; }
.severity-medium { background: #713f12; color: #fef08a; }
.severity-low { background: #1e3a8a; color: #bfdbfe; }
.severity-info { background: #374151; color: #e5e7eb; }
.actions { display: flex; gap: 1rem; margin-top: 1rem; }
.actions a { color: #D4AF37; }
.modal { position: fixed; inset: 0; background: rgba(0,0,0,0.9); display: flex; align-items: center; justify-content: center; }
.modal-body { width: 100%; max-width: 64rem; }
.viewer-frame { width: 100%; height: 70vh; border: 0; }
.loading-spinner { width: 2rem; height: 2rem; border: 3px solid #333; border-top-color: #D4AF37; border-radius: 50%; animation: spin 1s linear infinite; }
@keyframes spin { to { transform: rotate(360deg); } }
`
