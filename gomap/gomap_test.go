package gomap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/hjson-format/encode"
	"github.com/signadot/hjson-format/ir"
)

type Meta struct {
	Owner string `json:"owner" comment:"team owning the service"`
}

type Port struct {
	Name string `json:"name" comment:"port name"`
	Port int    `json:"port"`
}

type Service struct {
	Meta
	Name    string            `json:"name" comment:"service name\nmust be unique"`
	Ports   []Port            `json:"ports,omitempty"`
	Labels  map[string]string `json:"labels,omitempty"`
	Skipped string            `json:"-" comment:"never shown"`
	Debug   bool
	private int
}

func TestMarshal(t *testing.T) {
	svc := &Service{
		Meta:  Meta{Owner: "infra"},
		Name:  "api",
		Ports: []Port{{Name: "http", Port: 80}},
		Debug: true,
	}
	d, err := Marshal(svc, encode.EncodeRootBraces(true))
	if err != nil {
		t.Fatal(err)
	}
	want := `{
  # team owning the service
  owner: infra
  # service name
  # must be unique
  name: api
  ports: [
    {
      # port name
      name: http
      port: 80
    }
  ]
  Debug: true
}`
	if diff := cmp.Diff(want, string(d)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestToIRMap(t *testing.T) {
	node, err := ToIR(map[string]Port{"b": {Name: "x"}, "a": {Name: "y", Port: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, node.Fields); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
	if got := ir.Get(ir.Get(node, "b"), "name").Before; got != "# port name" {
		t.Errorf("comment %q", got)
	}
}

func TestFromIR(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "name", Val: ir.FromString("api")},
		{Key: "ports", Val: ir.FromSlice([]*ir.Node{
			ir.FromKeyVals([]ir.KeyVal{{Key: "port", Val: ir.FromInt(8080)}}),
		})},
	})
	var svc Service
	if err := FromIR(node, &svc); err != nil {
		t.Fatal(err)
	}
	want := Service{Name: "api", Ports: []Port{{Port: 8080}}}
	if diff := cmp.Diff(want, svc, cmp.AllowUnexported(Service{})); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := FromIR(ir.FromString("x"), &svc); !errors.Is(err, ErrMap) {
		t.Errorf("got %v", err)
	}
}

func TestToIRError(t *testing.T) {
	if _, err := ToIR(func() {}); !errors.Is(err, ErrMap) {
		t.Errorf("got %v", err)
	}
}
