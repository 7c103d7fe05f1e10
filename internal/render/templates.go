package render

// Markup sources for the shipped templates. They share one view model; only
// layout and styling differ. Inline styles are intentional: the markup has to
// look the same in the live preview and in the fallback HTML download with no
// external stylesheet.

const classicHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Invoice {{.Data.InvoiceNumber}}</title></head>
<body style="font-family: Georgia, serif; color: {{.PrimaryColor}}; margin: 40px;">
  <table style="width:100%"><tr>
    <td>
      {{if .Logo}}<img src="{{.Logo}}" alt="logo" style="max-height:80px; max-width:200px;">{{end}}
      <h1 style="margin:8px 0; color: {{.PrimaryColor}};">INVOICE</h1>
      <div style="color: {{.MutedColor}};">{{.Data.InvoiceNumber}}</div>
    </td>
    <td style="text-align:right; vertical-align:top;">
      <div>Date: {{.Data.Date}}</div>
      {{if .Data.DueDate}}<div>Due: {{.Data.DueDate}}</div>{{end}}
    </td>
  </tr></table>
  <table style="width:100%; margin-top:24px;"><tr>
    <td style="vertical-align:top;">
      <strong>From</strong><br>
      {{.Data.From.Name}}<br>{{.Data.From.Address}}<br>
      {{.Data.From.City}} {{.Data.From.Zip}}<br>{{.Data.From.Country}}<br>
      {{.Data.From.Email}} {{.Data.From.Phone}}
    </td>
    <td style="vertical-align:top; text-align:right;">
      <strong>Bill To</strong><br>
      {{.Data.To.Name}}<br>{{.Data.To.Address}}<br>
      {{.Data.To.City}} {{.Data.To.Zip}}<br>{{.Data.To.Country}}<br>
      {{.Data.To.Email}} {{.Data.To.Phone}}
    </td>
  </tr></table>
  <table style="width:100%; margin-top:24px; border-collapse:collapse;">
    <thead><tr style="background: {{.AccentColor}};">
      <th style="text-align:left; padding:8px;">Description</th>
      <th style="text-align:right; padding:8px;">Qty</th>
      <th style="text-align:right; padding:8px;">Unit Price</th>
      <th style="text-align:right; padding:8px;">Amount</th>
    </tr></thead>
    <tbody>
    {{range .Lines}}<tr>
      <td style="padding:8px; border-bottom:1px solid {{$.AccentColor}};">{{.Description}}</td>
      <td style="padding:8px; text-align:right; border-bottom:1px solid {{$.AccentColor}};">{{.Quantity}}</td>
      <td style="padding:8px; text-align:right; border-bottom:1px solid {{$.AccentColor}};">{{.UnitPrice}}</td>
      <td style="padding:8px; text-align:right; border-bottom:1px solid {{$.AccentColor}};">{{.Amount}}</td>
    </tr>{{end}}
    </tbody>
  </table>
  <table style="margin-left:auto; margin-top:16px;">
    <tr><td style="padding:4px 16px;">Subtotal</td><td style="text-align:right;">{{.Subtotal}}</td></tr>
    {{if .HasDiscount}}<tr><td style="padding:4px 16px;">Discount</td><td style="text-align:right;">-{{.Discount}}</td></tr>{{end}}
    <tr><td style="padding:4px 16px;">Tax ({{.TaxRate}}%)</td><td style="text-align:right;">{{.Tax}}</td></tr>
    <tr style="font-weight:bold;"><td style="padding:4px 16px;">Total</td><td style="text-align:right;">{{.Total}}</td></tr>
  </table>
  {{if .Data.PaymentMethod}}<p><strong>Payment:</strong> {{.Data.PaymentMethod}}</p>{{end}}
  {{if .Data.BankDetails}}<p style="white-space:pre-line;">{{.Data.BankDetails}}</p>{{end}}
  {{if .Data.Notes}}<p style="color: {{.MutedColor}}; white-space:pre-line;">{{.Data.Notes}}</p>{{end}}
  {{if .Data.Terms}}<p style="font-size:12px; color: {{.MutedColor}}; white-space:pre-line;">{{.Data.Terms}}</p>{{end}}
</body>
</html>`

const modernHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Invoice {{.Data.InvoiceNumber}}</title></head>
<body style="font-family: Helvetica, Arial, sans-serif; color: {{.PrimaryColor}}; margin: 0;">
  <div style="background: {{.PrimaryColor}}; color: #fff; padding: 32px 40px;">
    <table style="width:100%"><tr>
      <td>
        {{if .Logo}}<img src="{{.Logo}}" alt="logo" style="max-height:64px; max-width:180px;">{{end}}
        <h1 style="margin:8px 0 0; letter-spacing:2px;">INVOICE</h1>
      </td>
      <td style="text-align:right; vertical-align:top;">
        <div style="font-size:18px; font-weight:bold;">{{.Data.InvoiceNumber}}</div>
        <div>{{.Data.Date}}</div>
        {{if .Data.DueDate}}<div>Due {{.Data.DueDate}}</div>{{end}}
      </td>
    </tr></table>
  </div>
  <div style="padding: 32px 40px;">
    <table style="width:100%"><tr>
      <td style="vertical-align:top;">
        <div style="color: {{.MutedColor}}; text-transform:uppercase; font-size:11px;">From</div>
        <div style="font-weight:bold;">{{.Data.From.Name}}</div>
        <div>{{.Data.From.Address}} {{.Data.From.City}} {{.Data.From.Zip}} {{.Data.From.Country}}</div>
        <div>{{.Data.From.Email}} {{.Data.From.Phone}}</div>
      </td>
      <td style="vertical-align:top; text-align:right;">
        <div style="color: {{.MutedColor}}; text-transform:uppercase; font-size:11px;">Bill To</div>
        <div style="font-weight:bold;">{{.Data.To.Name}}</div>
        <div>{{.Data.To.Address}} {{.Data.To.City}} {{.Data.To.Zip}} {{.Data.To.Country}}</div>
        <div>{{.Data.To.Email}} {{.Data.To.Phone}}</div>
      </td>
    </tr></table>
    <table style="width:100%; margin-top:28px; border-collapse:collapse;">
      <thead><tr>
        <th style="text-align:left; padding:10px 8px; border-bottom:2px solid {{.AccentColor}};">Description</th>
        <th style="text-align:right; padding:10px 8px; border-bottom:2px solid {{.AccentColor}};">Qty</th>
        <th style="text-align:right; padding:10px 8px; border-bottom:2px solid {{.AccentColor}};">Unit</th>
        <th style="text-align:right; padding:10px 8px; border-bottom:2px solid {{.AccentColor}};">Amount</th>
      </tr></thead>
      <tbody>
      {{range .Lines}}<tr>
        <td style="padding:10px 8px;">{{.Description}}</td>
        <td style="padding:10px 8px; text-align:right;">{{.Quantity}}</td>
        <td style="padding:10px 8px; text-align:right;">{{.UnitPrice}}</td>
        <td style="padding:10px 8px; text-align:right; font-weight:bold;">{{.Amount}}</td>
      </tr>{{end}}
      </tbody>
    </table>
    <table style="margin-left:auto; margin-top:20px;">
      <tr><td style="padding:4px 16px; color: {{.MutedColor}};">Subtotal</td><td style="text-align:right;">{{.Subtotal}}</td></tr>
      {{if .HasDiscount}}<tr><td style="padding:4px 16px; color: {{.MutedColor}};">Discount</td><td style="text-align:right;">-{{.Discount}}</td></tr>{{end}}
      <tr><td style="padding:4px 16px; color: {{.MutedColor}};">Tax ({{.TaxRate}}%)</td><td style="text-align:right;">{{.Tax}}</td></tr>
      <tr style="font-size:18px; font-weight:bold;"><td style="padding:8px 16px;">Total</td><td style="text-align:right; color: {{.AccentColor}};">{{.Total}}</td></tr>
    </table>
    {{if .Data.PaymentMethod}}<p><strong>Payment:</strong> {{.Data.PaymentMethod}}</p>{{end}}
    {{if .Data.BankDetails}}<p style="white-space:pre-line;">{{.Data.BankDetails}}</p>{{end}}
    {{if .Data.Notes}}<p style="color: {{.MutedColor}}; white-space:pre-line;">{{.Data.Notes}}</p>{{end}}
    {{if .Data.Terms}}<p style="font-size:12px; color: {{.MutedColor}}; white-space:pre-line;">{{.Data.Terms}}</p>{{end}}
  </div>
</body>
</html>`

const minimalHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Invoice {{.Data.InvoiceNumber}}</title></head>
<body style="font-family: 'Courier New', monospace; color: {{.PrimaryColor}}; margin: 48px; max-width: 640px;">
  {{if .Logo}}<img src="{{.Logo}}" alt="logo" style="max-height:56px; max-width:160px;"><br>{{end}}
  <h2 style="margin:16px 0 4px;">Invoice {{.Data.InvoiceNumber}}</h2>
  <div style="color: {{.MutedColor}};">{{.Data.Date}}{{if .Data.DueDate}} · due {{.Data.DueDate}}{{end}}</div>
  <hr style="border:none; border-top:1px solid {{.PrimaryColor}}; margin:24px 0;">
  <div>{{.Data.From.Name}} → {{.Data.To.Name}}</div>
  <div style="color: {{.MutedColor}}; font-size:13px;">{{.Data.To.Address}} {{.Data.To.City}} {{.Data.To.Zip}} {{.Data.To.Country}}</div>
  <table style="width:100%; margin-top:24px; border-collapse:collapse; font-size:14px;">
    {{range .Lines}}<tr>
      <td style="padding:6px 0;">{{.Description}}</td>
      <td style="padding:6px 0; text-align:right; color: {{$.MutedColor}};">{{.Quantity}} × {{.UnitPrice}}</td>
      <td style="padding:6px 0; text-align:right; width:120px;">{{.Amount}}</td>
    </tr>{{end}}
  </table>
  <hr style="border:none; border-top:1px dashed {{.MutedColor}}; margin:16px 0;">
  <table style="width:100%; font-size:14px;">
    <tr><td>subtotal</td><td style="text-align:right;">{{.Subtotal}}</td></tr>
    {{if .HasDiscount}}<tr><td>discount</td><td style="text-align:right;">-{{.Discount}}</td></tr>{{end}}
    <tr><td>tax {{.TaxRate}}%</td><td style="text-align:right;">{{.Tax}}</td></tr>
    <tr style="font-weight:bold; font-size:16px;"><td>total</td><td style="text-align:right;">{{.Total}}</td></tr>
  </table>
  {{if .Data.Notes}}<p style="color: {{.MutedColor}}; white-space:pre-line; font-size:13px;">{{.Data.Notes}}</p>{{end}}
  {{if .Data.Terms}}<p style="color: {{.MutedColor}}; white-space:pre-line; font-size:12px;">{{.Data.Terms}}</p>{{end}}
</body>
</html>`
