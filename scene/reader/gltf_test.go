package reader

import (
	"strings"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/maxplugins/InfoTexture/types"
)

func TestSceneFromDocument(t *testing.T) {
	doc := gltf.NewDocument()
	appendTriangleMesh(doc, "tri")
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name:        "tri",
		Mesh:        gltf.Index(0),
		Translation: [3]float32{5, 0, 0},
	})
	doc.Scenes[0].Nodes = []uint32{0}

	sc, err := SceneFromDocument(doc)
	if err != nil {
		t.Fatal(err)
	}

	if len(sc.Nodes) != 1 {
		t.Fatalf("expected 1 scene node; got %d", len(sc.Nodes))
	}
	node := sc.Nodes[0]
	if node.Name != "tri" || len(node.Mesh.Verts) != 3 || len(node.Mesh.Faces) != 1 {
		t.Fatalf("expected node %q with 3 verts and 1 face; got %q with %d and %d",
			"tri", node.Name, len(node.Mesh.Verts), len(node.Mesh.Faces))
	}

	// The node translation must be baked into the world-space vertices
	bbox := node.Mesh.BBox()
	if bbox[0][0] != 5 || bbox[1][0] != 6 {
		t.Fatalf("expected translated bbox X range [5, 6]; got [%f, %f]", bbox[0][0], bbox[1][0])
	}
}

func TestSceneFromDocumentMatrixTransform(t *testing.T) {
	doc := gltf.NewDocument()
	appendTriangleMesh(doc, "tri")
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: "tri",
		Mesh: gltf.Index(0),
		Matrix: [16]float32{
			1, 0, 0, 0,
			0, 1, 0, 0,
			0, 0, 1, 0,
			3, 4, 5, 1,
		},
	})
	doc.Scenes[0].Nodes = []uint32{0}

	sc, err := SceneFromDocument(doc)
	if err != nil {
		t.Fatal(err)
	}

	// An explicit matrix transform takes precedence over the TRS properties
	bbox := sc.Nodes[0].Mesh.BBox()
	exp := types.XYZ(3, 4, 5)
	if bbox[0] != exp {
		t.Fatalf("expected matrix-translated bbox min %v; got %v", exp, bbox[0])
	}
}

func TestSceneFromDocumentNestedTransforms(t *testing.T) {
	doc := gltf.NewDocument()
	appendTriangleMesh(doc, "tri")
	doc.Nodes = append(doc.Nodes,
		&gltf.Node{
			Name:        "parent",
			Translation: [3]float32{0, 10, 0},
			Children:    []uint32{1},
		},
		&gltf.Node{
			Name:        "child",
			Mesh:        gltf.Index(0),
			Translation: [3]float32{5, 0, 0},
		},
	)
	doc.Scenes[0].Nodes = []uint32{0}

	sc, err := SceneFromDocument(doc)
	if err != nil {
		t.Fatal(err)
	}

	if len(sc.Nodes) != 1 {
		t.Fatalf("expected 1 scene node; got %d", len(sc.Nodes))
	}

	// Parent and child translations compose
	bbox := sc.Nodes[0].Mesh.BBox()
	exp := types.XYZ(5, 10, 0)
	if bbox[0] != exp {
		t.Fatalf("expected composed bbox min %v; got %v", exp, bbox[0])
	}
}

func TestSceneFromDocumentNonIndexed(t *testing.T) {
	doc := gltf.NewDocument()
	posAccessor := modeler.WritePosition(doc, [][3]float32{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
	})
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "soup",
		Primitives: []*gltf.Primitive{
			{
				Attributes: map[string]uint32{"POSITION": posAccessor},
				Mode:       gltf.PrimitiveTriangles,
			},
		},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: "soup", Mesh: gltf.Index(0)})
	doc.Scenes[0].Nodes = []uint32{0}

	sc, err := SceneFromDocument(doc)
	if err != nil {
		t.Fatal(err)
	}

	// Non-indexed vertices form sequential triangles
	if len(sc.Nodes) != 1 || len(sc.Nodes[0].Mesh.Faces) != 1 {
		t.Fatalf("expected 1 node with 1 face; got %+v", sc.Nodes)
	}
}

func TestSceneFromDocumentErrors(t *testing.T) {
	if _, err := SceneFromDocument(&gltf.Document{}); err == nil {
		t.Fatal("expected an error for a document without scenes")
	}

	// A triangle primitive without a POSITION attribute cannot be loaded
	doc := gltf.NewDocument()
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "broken",
		Primitives: []*gltf.Primitive{
			{
				Attributes: map[string]uint32{},
				Mode:       gltf.PrimitiveTriangles,
			},
		},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: "broken", Mesh: gltf.Index(0)})
	doc.Scenes[0].Nodes = []uint32{0}

	_, err := SceneFromDocument(doc)
	if err == nil || !strings.Contains(err.Error(), "POSITION") {
		t.Fatalf("expected a missing POSITION attribute error; got %v", err)
	}
}

func TestReadSceneMissingFile(t *testing.T) {
	if _, err := ReadScene("/path/to/missing.gltf"); err == nil {
		t.Fatal("expected an error for a missing scene file")
	}
}

// Append an indexed single-triangle mesh to the document.
func appendTriangleMesh(doc *gltf.Document, name string) {
	posAccessor := modeler.WritePosition(doc, [][3]float32{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
	})
	indexAccessor := modeler.WriteIndices(doc, []uint32{0, 1, 2})

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: name,
		Primitives: []*gltf.Primitive{
			{
				Indices:    gltf.Index(indexAccessor),
				Attributes: map[string]uint32{"POSITION": posAccessor},
				Mode:       gltf.PrimitiveTriangles,
			},
		},
	})
}
