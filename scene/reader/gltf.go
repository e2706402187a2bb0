// Package reader loads glTF assets into scenes.
package reader

import (
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/maxplugins/InfoTexture/asset"
	"github.com/maxplugins/InfoTexture/log"
	"github.com/maxplugins/InfoTexture/scene"
	"github.com/maxplugins/InfoTexture/types"
)

var logger = log.New("reader")

// Identity matrix returned by MatrixOrDefault for nodes without an explicit
// matrix transform.
var identMatrix = [16]float32{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Read a glTF scene from a local path or http/https URL. Binary (.glb) and
// embedded .gltf assets are supported; assets that reference external buffer
// files are not, since the document is decoded from a single stream.
func ReadScene(pathToScene string) (*scene.Scene, error) {
	res, err := asset.NewResource(pathToScene, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "reader: could not open %q", pathToScene)
	}
	defer res.Close()

	logger.Infof("parsing scene from %s", res.Path())

	doc := new(gltf.Document)
	if err = gltf.NewDecoder(res).Decode(doc); err != nil {
		return nil, errors.Wrapf(err, "reader: could not parse %q", res.Path())
	}

	return SceneFromDocument(doc)
}

// Convert a parsed glTF document into a scene. The default document scene is
// used when one is set; node transforms are flattened so that every scene
// node carries world-space geometry.
func SceneFromDocument(doc *gltf.Document) (*scene.Scene, error) {
	if len(doc.Scenes) == 0 {
		return nil, errors.New("reader: document defines no scenes")
	}
	sceneIndex := 0
	if doc.Scene != nil {
		sceneIndex = int(*doc.Scene)
	}
	if sceneIndex >= len(doc.Scenes) {
		return nil, errors.Errorf("reader: default scene index %d out of range", sceneIndex)
	}

	sc := scene.NewScene()
	for _, nodeIndex := range doc.Scenes[sceneIndex].Nodes {
		if err := attachNode(sc, doc, int(nodeIndex), types.Ident4()); err != nil {
			return nil, err
		}
	}
	return sc, nil
}

// Recursively attach a document node and its children to the scene,
// accumulating transforms along the way.
func attachNode(sc *scene.Scene, doc *gltf.Document, nodeIndex int, parentTransform types.Mat4) error {
	if nodeIndex < 0 || nodeIndex >= len(doc.Nodes) {
		return errors.Errorf("reader: node index %d out of range", nodeIndex)
	}
	docNode := doc.Nodes[nodeIndex]
	transform := parentTransform.Mul4(nodeTransform(docNode))

	if docNode.Mesh != nil {
		mesh, err := meshFromDocument(doc, int(*docNode.Mesh))
		if err != nil {
			return errors.Wrapf(err, "reader: node %q", docNode.Name)
		}
		if _, err = sc.AddNode(docNode.Name, mesh, transform); err != nil {
			return err
		}
	}

	for _, childIndex := range docNode.Children {
		if err := attachNode(sc, doc, int(childIndex), transform); err != nil {
			return err
		}
	}
	return nil
}

// Merge all triangle primitives of a document mesh into a single mesh.
func meshFromDocument(doc *gltf.Document, meshIndex int) (*scene.Mesh, error) {
	if meshIndex < 0 || meshIndex >= len(doc.Meshes) {
		return nil, errors.Errorf("mesh index %d out of range", meshIndex)
	}
	docMesh := doc.Meshes[meshIndex]
	mesh := scene.NewMesh(docMesh.Name)

	for primIndex, prim := range docMesh.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			logger.Warningf("mesh %q: skipping primitive %d with unsupported mode %d", docMesh.Name, primIndex, prim.Mode)
			continue
		}

		posIndex, exists := prim.Attributes["POSITION"]
		if !exists {
			return nil, errors.Errorf("mesh %q: primitive %d defines no POSITION attribute", docMesh.Name, primIndex)
		}

		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIndex], nil)
		if err != nil {
			return nil, errors.Wrapf(err, "mesh %q: primitive %d positions", docMesh.Name, primIndex)
		}

		vertOffset := uint32(len(mesh.Verts))
		for _, pos := range positions {
			mesh.AddVertex(types.Vec3{pos[0], pos[1], pos[2]})
		}

		var indices []uint32
		if prim.Indices != nil {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return nil, errors.Wrapf(err, "mesh %q: primitive %d indices", docMesh.Name, primIndex)
			}
		} else {
			// Non-indexed primitive; treat the vertices as a triangle soup
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}
		if len(indices)%3 != 0 {
			return nil, errors.Errorf("mesh %q: primitive %d index count %d is not a multiple of 3", docMesh.Name, primIndex, len(indices))
		}

		for i := 0; i < len(indices); i += 3 {
			err = mesh.AddFace(vertOffset+indices[i], vertOffset+indices[i+1], vertOffset+indices[i+2])
			if err != nil {
				return nil, errors.Wrapf(err, "mesh %q: primitive %d", docMesh.Name, primIndex)
			}
		}
	}

	return mesh, nil
}

// Calculate the local transform for a document node. A non-identity matrix
// transform takes precedence over the TRS properties, matching the glTF
// specification.
func nodeTransform(docNode *gltf.Node) types.Mat4 {
	if m := docNode.MatrixOrDefault(); m != identMatrix {
		return types.Mat4(m)
	}

	t := docNode.TranslationOrDefault()
	r := docNode.RotationOrDefault()
	s := docNode.ScaleOrDefault()

	translate := types.Translate4(types.Vec3{float32(t[0]), float32(t[1]), float32(t[2])})
	rotate := types.Quat{
		V: types.Vec3{float32(r[0]), float32(r[1]), float32(r[2])},
		W: float32(r[3]),
	}.Mat4()
	scale := types.Scale4(types.Vec3{float32(s[0]), float32(s[1]), float32(s[2])})

	return translate.Mul4(rotate).Mul4(scale)
}
