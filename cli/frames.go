package cli

import (
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"go.viam.com/jcs/anatomy"
	"go.viam.com/jcs/config"
	"go.viam.com/jcs/referenceframe"
)

// FramesAction prints every calibrated bone's fixed frame and static offset.
func FramesAction(c *cli.Context) error {
	cfg, err := config.Read(c.String(generalFlagConfig))
	if err != nil {
		return err
	}
	session, err := cfg.Session(loggerFrom(c))
	if err != nil {
		return err
	}
	w := c.App.Writer
	writeBody(w, session.Femur())
	writeBody(w, session.Tibia())
	if session.Patella() != nil {
		writeBody(w, session.Patella())
	}
	return nil
}

func writeBody[B anatomy.Bone](w io.Writer, rb *anatomy.RigidBody[B]) {
	name := referenceframe.Name[B]()
	writeMatrix(w, fmt.Sprintf("%s fixed frame (%s side)", name, rb.Side()), rb.FixedFrame().Matrix())
	writeMatrix(w, fmt.Sprintf("%s in %s", name, referenceframe.Name[referenceframe.Tracker[B]]()), rb.StaticOffset().Matrix())
	writeLandmarks(w, rb)
}

// writeLandmarks prints where each calibration landmark sits in the bone's own frame.
func writeLandmarks[B anatomy.Bone](w io.Writer, rb *anatomy.RigidBody[B]) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.SetTitle(fmt.Sprintf("%s landmarks in %s frame", referenceframe.Name[B](), referenceframe.Name[B]()))
	tw.AppendHeader(table.Row{"landmark", "x", "y", "z"})
	for _, l := range []anatomy.BoneLandmark[B]{rb.Medial(), rb.Lateral(), rb.Far()} {
		p := rb.Locate(l)
		tw.AppendRow(table.Row{
			l.Role().RoleName(),
			fmt.Sprintf("%.4f", p.X), fmt.Sprintf("%.4f", p.Y), fmt.Sprintf("%.4f", p.Z),
		})
	}
	tw.Render()
}

func writeMatrix(w io.Writer, title string, m mgl64.Mat4) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.SetTitle(title)
	tw.AppendHeader(table.Row{"", "i", "j", "k", "origin"})
	for r, label := range []string{"x", "y", "z"} {
		row := table.Row{label}
		for col := 0; col < 4; col++ {
			row = append(row, fmt.Sprintf("%.4f", m.At(r, col)))
		}
		tw.AppendRow(row)
	}
	tw.Render()
}
