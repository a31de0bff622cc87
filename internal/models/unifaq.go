// Package models defines the core data structures and database interaction logic.
// It includes entity definitions and methods for persistence and validation.
package models

// Group holds the constants of one UNIFAQ sub-group.
type Group struct {
	SGI int     `json:"sgi"`
	MGI int     `json:"mgi"`
	Rk  float64 `json:"R_k"`
	Qk  float64 `json:"Q_k"`
}

// InteractionParameters holds the coefficients between main groups MGI1 (i) and MGI2 (j).
type InteractionParameters struct {
	MGI1 int     `json:"mgi1"`
	MGI2 int     `json:"mgi2"`
	Aij  float64 `json:"a_ij"`
	Aji  float64 `json:"a_ji"`
	Bij  float64 `json:"b_ij"`
	Bji  float64 `json:"b_ji"`
	Cij  float64 `json:"c_ij"`
	Cji  float64 `json:"c_ji"`
}

// Swap exchanges a_ij with a_ji, b_ij with b_ji and c_ij with c_ji.
// The main group indices are left untouched.
func (p *InteractionParameters) Swap() {
	p.Aij, p.Aji = p.Aji, p.Aij
	p.Bij, p.Bji = p.Bji, p.Bij
	p.Cij, p.Cji = p.Cji, p.Cij
}

// Reversed returns the same interaction seen from MGI2 towards MGI1.
func (p InteractionParameters) Reversed() InteractionParameters {
	p.Swap()
	p.MGI1, p.MGI2 = p.MGI2, p.MGI1
	return p
}

// Component is the group decomposition of a single fluid.
type Component struct {
	Groups []Group `json:"groups"`
}

func NewComponent(groups ...Group) Component {
	c := Component{Groups: make([]Group, len(groups))}
	copy(c.Groups, groups)
	return c
}

// MainGroups returns the distinct main group indices of the component in
// order of first appearance.
func (c Component) MainGroups() []int {
	seen := make(map[int]bool, len(c.Groups))
	mgis := []int{}

	for _, g := range c.Groups {
		if seen[g.MGI] {
			continue
		}
		seen[g.MGI] = true
		mgis = append(mgis, g.MGI)
	}

	return mgis
}

type Stats struct {
	Groups                int `json:"groups"`
	InteractionParameters int `json:"interaction_parameters"`
	MainGroups            int `json:"main_groups"`
}
