package stac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "root slash", in: "/", want: ""},
		{name: "empty stays empty", in: "", want: ""},
		{name: "trailing slash stripped", in: "/maps/", want: "/maps"},
		{name: "multiple trailing slashes stripped", in: "/maps///", want: "/maps"},
		{name: "nested path unchanged", in: "/maps/mars", want: "/maps/mars"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizePath(tt.in))
		})
	}
}

func TestPathDepth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "root position", in: "", want: 0},
		{name: "one segment", in: "/first_cat", want: 1},
		{name: "two segments", in: "/first_cat/first_coll", want: 2},
		{name: "three segments", in: "/a/b/c", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pathDepth(tt.in))
		})
	}
}

func TestRelToRoot(t *testing.T) {
	tests := []struct {
		name     string
		depth    int
		filename string
		want     string
	}{
		{name: "depth zero stays in place", depth: 0, filename: "first_cat.json", want: "./first_cat.json"},
		{name: "depth one", depth: 1, filename: "first_cat.json", want: "../first_cat.json"},
		{name: "depth two", depth: 2, filename: "first_cat.json", want: "../../first_cat.json"},
		{name: "depth five", depth: 5, filename: "root.json", want: "../../../../../root.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relToRoot(tt.depth, tt.filename))
		})
	}
}

func TestValidateChildPath(t *testing.T) {
	tests := []struct {
		name       string
		child      string
		parent     string
		allowEqual bool
		wantErr    error
	}{
		{name: "directly under parent", child: "/cat/coll", parent: "/cat"},
		{name: "under root parent", child: "/cat", parent: ""},
		{name: "deeply nested", child: "/a/b/c/d", parent: "/a"},
		{name: "equal rejected for containers", child: "/cat", parent: "/cat", wantErr: ErrPathOutsideParent},
		{name: "equal allowed for items", child: "/cat", parent: "/cat", allowEqual: true},
		{name: "root equal allowed for items", child: "", parent: "", allowEqual: true},
		{name: "sibling rejected", child: "/other", parent: "/cat", wantErr: ErrPathOutsideParent},
		{name: "shared prefix is not containment", child: "/catalogue", parent: "/cat", wantErr: ErrPathOutsideParent},
		{name: "parent of parent rejected", child: "/a", parent: "/a/b", wantErr: ErrPathOutsideParent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateChildPath(tt.child, tt.parent, tt.allowEqual)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTrimPathPrefix(t *testing.T) {
	tests := []struct {
		name   string
		child  string
		parent string
		want   string
	}{
		{name: "root parent keeps whole path", child: "/first_cat", parent: "", want: "/first_cat"},
		{name: "one level stripped", child: "/cat/coll", parent: "/cat", want: "/coll"},
		{name: "repeated segment only stripped once", child: "/cat/x/cat", parent: "/cat", want: "/x/cat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, trimPathPrefix(tt.child, tt.parent))
		})
	}
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "save", EventSave.String())
	assert.Equal(t, "tree", EventTree.String())
	assert.Equal(t, "event(42)", Event(42).String())
}

func TestContainerMediaKind(t *testing.T) {
	assert.Equal(t, "application/json", string(containerMediaKind(KindCatalog)))
	assert.Equal(t, "application/json", string(containerMediaKind(KindCollection)))
	assert.Panics(t, func() { containerMediaKind(KindItem) })
}
