package cmd

import (
	"bytes"
	"fmt"
	"math/rand"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/yangruisxy/curvetrace/accel/bvh"
	"github.com/yangruisxy/curvetrace/accel/curveleaf"
	"github.com/yangruisxy/curvetrace/geometry"
	"github.com/yangruisxy/curvetrace/types"
)

// Generate a procedural hair scene, build a BVH with quantized curve
// leaves over it and print encoding statistics.
func Bench(ctx *cli.Context) error {
	setupLogging(ctx)

	strands := ctx.Int("strands")
	segments := ctx.Int("segments")
	if strands <= 0 || segments <= 0 {
		return fmt.Errorf("strand and segment counts must be positive")
	}

	logger.Noticef("generating %d hair strands with %d segments each", strands, segments)
	sc := geometry.NewScene()
	geomID, err := sc.AddMesh(genHairMesh(strands, segments, ctx.Int64("seed")))
	if err != nil {
		return err
	}

	mesh := sc.Mesh(geomID)
	prims := make([]bvh.PrimRef, mesh.CurveCount())
	for i := range prims {
		prims[i] = bvh.PrimRef{
			GeomID: geomID,
			PrimID: uint32(i),
			Bounds: sc.PrimBounds(geomID, uint32(i)),
		}
	}

	arena := curveleaf.NewArena(0)
	encoder := curveleaf.NewEncoder(sc, arena)
	nodes := bvh.Build(prims, ctx.Int("leaf-size"), func(leaf *bvh.Node, leafPrims []bvh.PrimRef) {
		ref := encoder.CreateLeaf(leafPrims)
		leaf.SetBlocks(ref.Offset, ref.BlockCount)
	}, bvh.SurfaceAreaHeuristic)

	leafs, blocks, encBytes := encoder.Stats()
	rawBytes := len(mesh.Vertices)*16 + len(mesh.CurveIndices)*4

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Curve primitives", fmt.Sprintf("%d", len(prims))})
	table.Append([]string{"BVH nodes", fmt.Sprintf("%d", len(nodes))})
	table.Append([]string{"Leafs", fmt.Sprintf("%d", leafs)})
	table.Append([]string{"Leaf blocks", fmt.Sprintf("%d", blocks)})
	table.Append([]string{"Encoded bytes", fmt.Sprintf("%d", encBytes)})
	table.Append([]string{"Bytes/primitive", fmt.Sprintf("%.1f", float64(encBytes)/float64(len(prims)))})
	table.Append([]string{"Raw control point bytes", fmt.Sprintf("%d", rawBytes)})
	table.Render()
	logger.Noticef("encode results:\n%s", buf.String())

	return nil
}

// Build a mesh of wavy hair strands. Each strand is a chain of cubic
// Bezier tubes sharing endpoints; radii taper towards the strand tip.
func genHairMesh(strands, segments int, seed int64) *geometry.CurveMesh {
	rng := rand.New(rand.NewSource(seed))
	mesh := &geometry.CurveMesh{}

	for s := 0; s < strands; s++ {
		root := types.Vec3{rng.Float32() * 10, 0, rng.Float32() * 10}
		dir := types.Vec3{rng.Float32() - 0.5, 1, rng.Float32() - 0.5}.Normalize()
		pos := root
		radius := 0.02 + rng.Float32()*0.01

		for seg := 0; seg < segments; seg++ {
			taper := 1 - float32(seg)/float32(segments)
			step := dir.Mul(0.3)
			jitter := func() types.Vec3 {
				return types.Vec3{rng.Float32() - 0.5, rng.Float32() - 0.5, rng.Float32() - 0.5}.Mul(0.1)
			}

			p0 := pos
			p1 := pos.Add(step.Mul(1.0 / 3.0)).Add(jitter())
			p2 := pos.Add(step.Mul(2.0 / 3.0)).Add(jitter())
			p3 := pos.Add(step)

			first := uint32(len(mesh.Vertices))
			mesh.Vertices = append(mesh.Vertices,
				p0.Vec4(radius*taper),
				p1.Vec4(radius*taper),
				p2.Vec4(radius*taper),
				p3.Vec4(radius*taper),
			)
			mesh.CurveIndices = append(mesh.CurveIndices, first)

			pos = p3
			dir = dir.Add(jitter()).Normalize()
		}
	}

	return mesh
}
