package formatter

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/rdmanage/internal/domain"
)

func FormatProducts(products []*domain.Product) string {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{idCell(p.ID), Bold(p.Code), p.Name, orDash(p.Owner), Status(p.Status)})
	}
	return Header("Products") + "\n" + RenderTable([]string{"ID", "CODE", "NAME", "OWNER", "STATUS"}, rows)
}

// BuildModuleTree nests modules under their parents. Input order is kept
// among siblings. Modules whose parent is not in the slice become roots.
func BuildModuleTree(modules []*domain.ProductModule) []*TreeNode {
	nodes := make(map[int64]*TreeNode, len(modules))
	for _, m := range modules {
		nodes[m.ID] = &TreeNode{
			Title:  fmt.Sprintf("%s %s %s", idCell(m.ID), Bold(m.Code), m.Name),
			Status: m.Status,
			Detail: "L" + strconv.Itoa(m.Level),
		}
	}
	var roots []*TreeNode
	for _, m := range modules {
		n := nodes[m.ID]
		if m.ParentID != nil {
			if parent, ok := nodes[*m.ParentID]; ok {
				parent.Children = append(parent.Children, n)
				continue
			}
		}
		roots = append(roots, n)
	}
	return roots
}

// FormatModuleTree renders one product's module hierarchy.
func FormatModuleTree(product *domain.Product, modules []*domain.ProductModule) string {
	title := fmt.Sprintf("%s %s", product.Code, product.Name)
	if len(modules) == 0 {
		return Header(title) + "\n" + Dim("No modules.") + "\n"
	}
	return Header(title) + "\n" + RenderTree(BuildModuleTree(modules))
}

func FormatVersions(versions []*domain.VersionInfo) string {
	rows := make([][]string, 0, len(versions))
	for _, v := range versions {
		rows = append(rows, []string{
			idCell(v.ID), Bold(v.VersionCode), v.Name,
			strconv.FormatInt(v.ProductID, 10), strconv.FormatInt(v.ModuleID, 10),
			v.PlanReleaseDate.String(), DateCell(v.ActualReleaseDate), Status(v.Status),
		})
	}
	return Header("Versions") + "\n" + RenderTable(
		[]string{"ID", "CODE", "NAME", "PRODUCT", "MODULE", "PLANNED", "RELEASED", "STATUS"}, rows)
}

func FormatRequirements(reqs []*domain.Requirement, now time.Time) string {
	rows := make([][]string, 0, len(reqs))
	for _, r := range reqs {
		rows = append(rows, []string{
			idCell(r.ID), Bold(r.Code), r.Name, r.Priority, Status(r.Status),
			strconv.FormatInt(r.VersionID, 10), r.Owner, DueCell(r.DueDate, now), IntCell(r.EstimateStoryPoints),
		})
	}
	return Header("Requirements") + "\n" + RenderTable(
		[]string{"ID", "CODE", "NAME", "PRIORITY", "STATUS", "VERSION", "OWNER", "DUE", "POINTS"}, rows)
}

func FormatTasks(tasks []*domain.TaskItem, now time.Time) string {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			idCell(t.ID), t.Title, strconv.FormatInt(t.RequirementID, 10),
			t.Assignee, Status(t.Status), DueCell(t.DueDate, now), IntCell(t.EstimateHours),
		})
	}
	return Header("Tasks") + "\n" + RenderTable(
		[]string{"ID", "TITLE", "REQUIREMENT", "ASSIGNEE", "STATUS", "DUE", "HOURS"}, rows)
}

// FormatDicts renders dictionary items. Inactive entries are dimmed.
func FormatDicts(items []*domain.DictItem) string {
	rows := make([][]string, 0, len(items))
	for _, d := range items {
		active := StyleGreen.Render("yes")
		label := d.DictLabel
		if d.IsActive != domain.DictActive {
			active = StyleRed.Render("no")
			label = Dim(label)
		}
		rows = append(rows, []string{
			idCell(d.ID), d.DictType, Bold(d.DictCode), label, strconv.Itoa(d.SortOrder), active, orDash(d.Remark),
		})
	}
	return Header("Dictionary") + "\n" + RenderTable(
		[]string{"ID", "TYPE", "CODE", "LABEL", "ORDER", "ACTIVE", "REMARK"}, rows)
}
