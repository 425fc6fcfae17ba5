package metrics

import (
	"sort"
	"strings"

	"depscan/internal/model"
)

const (
	white = iota
	grey
	black
)

// sortedEfferents returns p's efferent dependencies sorted by name, for
// deterministic traversal order.
func sortedEfferents(p *model.JavaPackage) []*model.JavaPackage {
	out := p.Efferents()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// frame is one stack entry of the iterative DFS: the package being visited,
// its (sorted) children, and how far traversal has gotten into them.
type frame struct {
	pkg      *model.JavaPackage
	children []*model.JavaPackage
	idx      int
}

// MarkCycles runs DFS along efferent edges for every package in pkgs,
// per spec.md §4.F: a per-package visiting stack; on encountering a package
// already on the stack (grey), every package on the stack from the
// back-edge target onward is marked ContainsCycle. Traversal is iterative
// to tolerate deep graphs without overflowing the host stack.
func MarkCycles(pkgs []*model.JavaPackage) {
	color := make(map[string]int, len(pkgs))

	ordered := make([]*model.JavaPackage, len(pkgs))
	copy(ordered, pkgs)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Name < ordered[j].Name })

	for _, start := range ordered {
		if color[start.Name] != white {
			continue
		}
		runDFS(start, color)
	}
}

func runDFS(start *model.JavaPackage, color map[string]int) {
	var stack []*model.JavaPackage
	stackPos := make(map[string]int)
	var frames []*frame

	push := func(p *model.JavaPackage) {
		color[p.Name] = grey
		stack = append(stack, p)
		stackPos[p.Name] = len(stack) - 1
		frames = append(frames, &frame{pkg: p, children: sortedEfferents(p)})
	}

	push(start)
	for len(frames) > 0 {
		top := frames[len(frames)-1]
		if top.idx >= len(top.children) {
			color[top.pkg.Name] = black
			stack = stack[:len(stack)-1]
			delete(stackPos, top.pkg.Name)
			frames = frames[:len(frames)-1]
			continue
		}

		child := top.children[top.idx]
		top.idx++

		switch color[child.Name] {
		case white:
			push(child)
		case grey:
			pos := stackPos[child.Name]
			for _, p := range stack[pos:] {
				p.ContainsCycle = true
			}
		case black:
			// already fully explored; no new cycle information via this edge.
		}
	}
}

// CollectAllCycles returns every simple cycle through p (spec.md §4.F): a
// depth-first exploration from p that records the current path and, on a
// back-edge to p, emits the path; branches are pruned on reaching any other
// already-visited node on the current path. Output is sorted
// lexicographically by the joined package-name path.
func CollectAllCycles(p *model.JavaPackage) [][]*model.JavaPackage {
	visited := map[string]bool{p.Name: true}
	path := []*model.JavaPackage{p}
	var cycles [][]*model.JavaPackage

	var dfs func(cur *model.JavaPackage)
	dfs = func(cur *model.JavaPackage) {
		for _, child := range sortedEfferents(cur) {
			if child.Name == p.Name {
				cycle := make([]*model.JavaPackage, len(path))
				copy(cycle, path)
				cycles = append(cycles, cycle)
				continue
			}
			if visited[child.Name] {
				continue
			}
			visited[child.Name] = true
			path = append(path, child)
			dfs(child)
			path = path[:len(path)-1]
			delete(visited, child.Name)
		}
	}
	dfs(p)

	sort.Slice(cycles, func(i, j int) bool {
		return cycleKey(cycles[i]) < cycleKey(cycles[j])
	})
	return cycles
}

func cycleKey(cycle []*model.JavaPackage) string {
	names := make([]string, len(cycle))
	for i, p := range cycle {
		names[i] = p.Name
	}
	return strings.Join(names, " ")
}
