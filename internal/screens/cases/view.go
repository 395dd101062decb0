package cases

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/nkapoor/emcmd/internal/content"
	"github.com/nkapoor/emcmd/internal/scoring"
	"github.com/nkapoor/emcmd/internal/ui/theme"
)

var (
	headingStyle  = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	bodyStyle     = lipgloss.NewStyle().Foreground(theme.Text)
	dimStyle      = lipgloss.NewStyle().Foreground(theme.TextDim)
	criticalStyle = lipgloss.NewStyle().Foreground(theme.Critical).Bold(true)
	warningStyle  = lipgloss.NewStyle().Foreground(theme.Warning)
)

func gradeStyle(t scoring.Tier) lipgloss.Style {
	switch t {
	case scoring.TierStrong:
		return lipgloss.NewStyle().Foreground(theme.Stable)
	case scoring.TierBorderline:
		return lipgloss.NewStyle().Foreground(theme.Warning)
	default:
		return lipgloss.NewStyle().Foreground(theme.Critical)
	}
}

func (s *simulator) View(width, height int) string {
	var lines []string
	switch s.phase {
	case phaseBriefing:
		lines = s.briefingLines()
	case phaseActions:
		return s.viewActions(width, height)
	default:
		lines = s.resultLines()
	}
	return scrollWindow(lines, &s.offset, height)
}

// scrollWindow clamps the offset and returns the visible slice.
func scrollWindow(lines []string, offset *int, height int) string {
	maxOffset := len(lines) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if *offset > maxOffset {
		*offset = maxOffset
	}
	end := *offset + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[*offset:end], "\n")
}

func (s *simulator) briefingLines() []string {
	sc := s.session.Scenario()
	h := sc.History

	var lines []string
	add := func(line string) { lines = append(lines, "  "+line) }

	add("")
	add(criticalStyle.Render("INCOMING PATIENT"))
	add(bodyStyle.Render(sc.Presentation))
	add("")

	add(headingStyle.Render("HISTORY"))
	add(bodyStyle.Render(fmt.Sprintf("%d-year-old %s. Chief complaint: %s", h.Age, h.Sex, h.ChiefComplaint)))
	add(dimStyle.Render(h.HPI))
	if len(h.PMH) > 0 {
		add(dimStyle.Render("PMH: " + strings.Join(h.PMH, ", ")))
	}
	if len(h.Medications) > 0 {
		add(dimStyle.Render("Medications: " + strings.Join(h.Medications, ", ")))
	}
	if len(h.Allergies) > 0 {
		add(dimStyle.Render("Allergies: " + strings.Join(h.Allergies, ", ")))
	}
	if h.SocialHistory != "" {
		add(dimStyle.Render("Social: " + h.SocialHistory))
	}
	add("")

	add(headingStyle.Render("VITALS"))
	add(renderVitals(sc.InitialVitals))
	add("")

	add(headingStyle.Render("PHYSICAL EXAM"))
	for _, pair := range examFindings(sc.PhysicalExam) {
		add(bodyStyle.Render(pair[0]+": ") + dimStyle.Render(pair[1]))
	}
	add("")

	add(theme.Hint.Render("Enter to take over management"))
	return lines
}

func (s *simulator) viewActions(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d selected  ·  choose your management, then submit",
		s.session.SelectedCount())) + "\n\n")

	b.WriteString(s.choice.View())

	// Feedback for the highlighted action, once revealed.
	if opt, ok := s.choice.Highlighted(); ok && s.session.IsRevealed(opt.ID) {
		if a, found := s.findAction(opt.ID); found && a.Feedback != "" {
			b.WriteString("\n" + warningStyle.Render("  ▶ ") + dimStyle.Render(a.Feedback) + "\n")
		}
	}

	_ = width
	_ = height
	return b.String()
}

func (s *simulator) findAction(id string) (content.CaseAction, bool) {
	for _, a := range s.session.Actions() {
		if a.ID == id {
			return a, true
		}
	}
	return content.CaseAction{}, false
}

func (s *simulator) resultLines() []string {
	res := *s.result
	sc := s.session.Scenario()

	var lines []string
	add := func(line string) { lines = append(lines, "  "+line) }

	add("")
	add(fmt.Sprintf("%s  Score %d/100 (%s)",
		headingStyle.Render("CASE COMPLETE"), res.Score,
		gradeStyle(res.Grade.Tier()).Render(string(res.Grade))))
	add(dimStyle.Render(fmt.Sprintf("%d correct and %d incorrect actions selected  ·  %s",
		res.CorrectSelected, res.IncorrectSelected, res.TimeTaken.Round(time.Second))))
	if s.errMsg != "" {
		add(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}
	add("")

	add(headingStyle.Render("YOUR DECISIONS"))
	if len(res.Outcomes) == 0 {
		add(dimStyle.Render("No actions were taken."))
	}
	for _, o := range res.Outcomes {
		mark := theme.Correct.Render("✓")
		if !o.Correct {
			mark = theme.Incorrect.Render("✗")
		}
		add(fmt.Sprintf("%s %s", mark, o.Action.Action))
		if o.Action.Feedback != "" {
			add(dimStyle.Render("   " + o.Action.Feedback))
		}
	}
	add("")

	if len(res.MissedActions) > 0 {
		add(headingStyle.Render("MISSED CRITICAL ACTIONS"))
		for _, a := range res.MissedActions {
			add(warningStyle.Render("! " + a.Action))
			if a.Timing != "" {
				add(dimStyle.Render("   Expected " + a.Timing))
			}
		}
		add("")
	}

	if len(sc.Timeline) > 0 {
		add(headingStyle.Render("HOW IT UNFOLDED"))
		for _, ev := range sc.Timeline {
			add(bodyStyle.Render(fmt.Sprintf("t+%dm  %s", ev.TimeMin, ev.Event)))
			if ev.Vitals != nil {
				add(dimStyle.Render("      " + renderVitals(*ev.Vitals)))
			}
		}
		add("")
	}

	lines = append(lines, s.debriefLines()...)

	add(theme.Hint.Render("R to retry this case, Esc to return"))
	return lines
}

func (s *simulator) debriefLines() []string {
	var lines []string
	add := func(line string) { lines = append(lines, "  "+line) }

	switch {
	case s.debriefWaiting:
		add(headingStyle.Render("ATTENDING DEBRIEF"))
		add(dimStyle.Italic(true).Render("Preparing your debrief..."))
		add("")
	case s.debriefErr != nil:
		add(headingStyle.Render("ATTENDING DEBRIEF"))
		add(dimStyle.Render("Debrief unavailable: " + s.debriefErr.Error()))
		add("")
	case s.debriefResult != nil:
		d := s.debriefResult
		add(headingStyle.Render("ATTENDING DEBRIEF"))
		add(bodyStyle.Render(d.Summary))
		add("")
		add(theme.Correct.Render("What went well"))
		for _, st := range d.Strengths {
			add(bodyStyle.Render("• " + st))
		}
		add("")
		add(warningStyle.Render("Work on next"))
		for _, im := range d.Improvements {
			add(bodyStyle.Render("• " + im))
		}
		add("")
		add(criticalStyle.Render("Key point: ") + bodyStyle.Render(d.KeyTeachingPoint))
		add("")
	}
	return lines
}

func renderVitals(v content.VitalSigns) string {
	parts := []string{
		fmt.Sprintf("HR %d", v.HeartRate),
		fmt.Sprintf("BP %d/%d", v.BloodPressure.Systolic, v.BloodPressure.Diastolic),
		fmt.Sprintf("RR %d", v.RespiratoryRate),
		fmt.Sprintf("SpO₂ %d%%", v.OxygenSaturation),
		fmt.Sprintf("T %.1f°C", v.Temperature),
	}
	if v.GCS > 0 {
		parts = append(parts, fmt.Sprintf("GCS %d", v.GCS))
	}
	return bodyStyle.Render(strings.Join(parts, "  "))
}

// examFindings flattens the exam struct to labelled non-empty findings.
func examFindings(e content.PhysicalExam) [][2]string {
	all := [][2]string{
		{"General", e.General},
		{"CV", e.Cardiovascular},
		{"Resp", e.Respiratory},
		{"Neuro", e.Neurological},
		{"Abd", e.Abdominal},
		{"Skin", e.Skin},
		{"Ext", e.Extremities},
	}
	out := make([][2]string, 0, len(all))
	for _, pair := range all {
		if pair[1] != "" {
			out = append(out, pair)
		}
	}
	return out
}
