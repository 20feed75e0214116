package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/minio/minio-go/v7"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"trackforce/internal/db"
	"trackforce/internal/models"
)

const payslipURLExpiry = 24 * time.Hour

type PayslipService struct {
	peoples  *mongo.Collection
	payments *mongo.Collection
	store    *minio.Client
	bucket   string
}

func NewPayslipService(database *mongo.Database, store *minio.Client, bucket string) *PayslipService {
	return &PayslipService{
		peoples:  database.Collection(db.PeoplesCollection),
		payments: database.Collection(db.PaymentsCollection),
		store:    store,
		bucket:   bucket,
	}
}

// PresignedPayslip renders the payslip PDF for a settled payment, uploads it
// to object storage and returns a time-limited download URL.
func (s *PayslipService) PresignedPayslip(ctx context.Context, paymentID string) (string, error) {
	objID, err := primitive.ObjectIDFromHex(paymentID)
	if err != nil {
		return "", ErrInvalidID
	}

	var payment models.Payment
	if err := s.payments.FindOne(ctx, bson.M{"_id": objID}).Decode(&payment); err != nil {
		return "", err
	}
	if payment.Status != models.PaymentPaid {
		return "", ErrNotSettled
	}

	filter := bson.M{"email": payment.Email}
	if pid, err := primitive.ObjectIDFromHex(payment.EmployeeID); err == nil {
		filter = bson.M{"$or": bson.A{bson.M{"_id": pid}, bson.M{"email": payment.Email}}}
	}
	var person models.Person
	if err := s.peoples.FindOne(ctx, filter).Decode(&person); err != nil {
		return "", err
	}

	pdfBytes, err := renderPayslip(person, payment)
	if err != nil {
		return "", fmt.Errorf("failed to render payslip: %w", err)
	}

	objectName := fmt.Sprintf("payslip_%s.pdf", payment.ID.Hex())
	_, err = s.store.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(pdfBytes), int64(len(pdfBytes)),
		minio.PutObjectOptions{ContentType: "application/pdf"})
	if err != nil {
		return "", fmt.Errorf("failed to upload payslip: %w", err)
	}

	url, err := s.store.PresignedGetObject(ctx, s.bucket, objectName, payslipURLExpiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to presign payslip url: %w", err)
	}
	return url.String(), nil
}

func renderPayslip(person models.Person, payment models.Payment) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", person.Name))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s", person.Email))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Designation: %s", person.Designation))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s %d", monthName(payment.Month), payment.Year))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Amount: %.2f USD", payment.Salary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Transaction: %s", payment.TransactionID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Paid on: %s", payment.PaymentDate.Format("2006-01-02")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func monthName(month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%d", month)
	}
	return time.Month(month).String()
}
