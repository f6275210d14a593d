package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/kunaalsai007/Wishlist-App/models"
	"github.com/kunaalsai007/Wishlist-App/utils"
	"github.com/tealeg/xlsx"
)

const (
	exportFormatPDF  = "pdf"
	exportFormatXLSX = "xlsx"

	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var exportHeaders = []string{"Name", "Price", "Added By", "Added At", "Image URL", "Notes"}

// ExportWishlist downloads a wishlist's items as PDF or Excel
func ExportWishlist(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := wishlistID(c)
	if !ok {
		return
	}

	format := c.DefaultQuery("format", exportFormatPDF)
	if format != exportFormatPDF && format != exportFormatXLSX {
		utils.RespondError(c, utils.ValidationErr("Format must be pdf or xlsx"))
		return
	}

	wishlist, err := wishlists().GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	if err := requireAccess(user.ID)(wishlist); err != nil {
		utils.RespondError(c, err)
		return
	}

	var buf bytes.Buffer
	contentType := contentTypePDF
	if format == exportFormatXLSX {
		contentType = contentTypeXLSX
		err = writeWishlistXLSX(&buf, wishlist)
	} else {
		err = writeWishlistPDF(&buf, wishlist)
	}
	if err != nil {
		utils.RespondError(c, utils.InternalError("Failed to export wishlist", err))
		return
	}

	utils.LogDebug("Exported wishlist %d as %s for user %d", id, format, user.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=wishlist_%d.%s", id, format))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func collaboratorList(w *models.Wishlist) string {
	names := make([]string, 0, len(w.Collaborators))
	for _, c := range w.Collaborators {
		names = append(names, c.User.Username)
	}
	return strings.Join(names, ", ")
}

func writeWishlistXLSX(buf *bytes.Buffer, w *models.Wishlist) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Wishlist")
	if err != nil {
		return err
	}

	sheet.AddRow().AddCell().SetString(w.Title)
	if w.Description != "" {
		sheet.AddRow().AddCell().SetString(w.Description)
	}
	sheet.AddRow().AddCell().SetString("Created by " + w.Creator.Username)
	sheet.AddRow().AddCell().SetString("Collaborators: " + collaboratorList(w))
	sheet.AddRow()

	bold := xlsx.NewStyle()
	font := xlsx.DefaultFont()
	font.Bold = true
	bold.Font = *font

	headerRow := sheet.AddRow()
	for _, h := range exportHeaders {
		cell := headerRow.AddCell()
		cell.SetString(h)
		cell.SetStyle(bold)
	}

	var total float64
	for _, it := range w.Items {
		row := sheet.AddRow()
		row.AddCell().SetString(it.Name)
		row.AddCell().SetFloat(it.Price)
		row.AddCell().SetString(it.AddedBy.Username)
		row.AddCell().SetString(it.AddedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetString(it.ImageURL)
		row.AddCell().SetString(it.Notes)
		total += it.Price
	}

	sheet.AddRow()
	totalRow := sheet.AddRow()
	label := totalRow.AddCell()
	label.SetString("Total")
	label.SetStyle(bold)
	totalRow.AddCell().SetFloat(total)

	return file.Write(buf)
}

func writeWishlistPDF(buf *bytes.Buffer, w *models.Wishlist) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(utils.AppName+" - "+w.Title, true)
	pdf.SetCreator(utils.AppName, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, tr(w.Title))
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 11)
	if w.Description != "" {
		pdf.MultiCell(0, 6, tr(w.Description), "", "L", false)
	}
	pdf.Cell(0, 7, tr("Created by "+w.Creator.Username))
	pdf.Ln(6)
	pdf.Cell(0, 7, tr("Collaborators: "+collaboratorList(w)))
	pdf.Ln(10)

	colWidths := []float64{60, 25, 40, 35, 60, 57}
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	for i, h := range exportHeaders {
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	var total float64
	fill := false
	for _, it := range w.Items {
		pdf.SetFillColor(230, 240, 255)
		pdf.CellFormat(colWidths[0], 7, tr(it.Name), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[1], 7, fmt.Sprintf("%.2f", it.Price), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colWidths[2], 7, tr(it.AddedBy.Username), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[3], 7, it.AddedAt.Format("2006-01-02 15:04"), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[4], 7, tr(it.ImageURL), "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[5], 7, tr(it.Notes), "1", 0, "L", fill, 0, "")
		pdf.Ln(-1)
		fill = !fill
		total += it.Price
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(colWidths[0], 8, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(colWidths[1], 8, fmt.Sprintf("%.2f", total), "1", 0, "R", false, 0, "")

	return pdf.Output(buf)
}
